package remote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocation_Local(t *testing.T) {
	tests := []string{
		"/home/user/data",
		"./relative",
		"../parent",
		"~/notes.txt",
		"justafile.txt",
		"dir/with:colon",
	}
	for _, input := range tests {
		loc, err := ParseLocation(input)
		assert.NoError(t, err, "input: %s", input)
		assert.False(t, loc.IsRemote, "input: %s", input)
		assert.Equal(t, input, loc.Path, "input: %s", input)
		assert.Equal(t, input, loc.String(), "input: %s", input)
	}
}

func TestParseLocation_Remote(t *testing.T) {
	tests := []struct {
		input string
		user  string
		host  string
		port  int
		path  string
	}{
		{"user@host:/path", "user", "host", 0, "/path"},
		{"host:/path", "", "host", 0, "/path"},
		{"user@myserver.com:2222:/data/backup", "user", "myserver.com", 2222, "/data/backup"},
		{"root@10.0.0.1:/mnt/disk", "root", "10.0.0.1", 0, "/mnt/disk"},
		{"host:relative/file.txt", "", "host", 0, "relative/file.txt"},
	}
	for _, tt := range tests {
		loc, err := ParseLocation(tt.input)
		assert.NoError(t, err, "input: %s", tt.input)
		assert.True(t, loc.IsRemote, "input: %s", tt.input)
		assert.Equal(t, tt.user, loc.User, "input: %s", tt.input)
		assert.Equal(t, tt.host, loc.Host, "input: %s", tt.input)
		assert.Equal(t, tt.port, loc.Port, "input: %s", tt.input)
		assert.Equal(t, tt.path, loc.Path, "input: %s", tt.input)
		assert.Equal(t, tt.input, loc.String(), "input: %s", tt.input)
	}
}

func TestParseLocation_Errors(t *testing.T) {
	tests := []string{
		"",
		":path",
		"@:/p",
		"host:",
		"h:0:/p",
		"h:70000:/p",
	}
	for _, input := range tests {
		_, err := ParseLocation(input)
		assert.Error(t, err, "input: %s", input)
	}
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, `'plain'`, ShellQuote("plain"))
	assert.Equal(t, `'it'\''s here'`, ShellQuote("it's here"))
	assert.Equal(t, `'$(rm -rf ~)'`, ShellQuote("$(rm -rf ~)"))
}

func TestStatCommand(t *testing.T) {
	loc := Location{IsRemote: true, User: "manu", Host: "box", Port: 2222, Path: "/srv"}
	cmd := StatCommand(loc, "/keys/id")(context.Background(), "/srv/it's", "%a")
	assert.Equal(t, []string{
		"ssh", "-l", "manu", "-p", "2222", "-i", "/keys/id", "-o", "BatchMode=yes",
		"-T", "box", `stat -c '%a' -- '/srv/it'\''s'`,
	}, cmd.Args)
}

func TestSSHSubsystemCommand(t *testing.T) {
	cmd := SSHSubsystemCommand(Location{IsRemote: true, Host: "box"}, "", "sftp")
	assert.Equal(t, []string{"ssh", "-o", "BatchMode=yes", "-s", "box", "sftp"}, cmd.Args)
}
