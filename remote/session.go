package remote

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/m-manu/fsinspect/fmte"
	fsi "github.com/m-manu/fsinspect/fs"
	"github.com/pkg/sftp"
)

// Session is an SFTP connection tunnelled through the system ssh binary.
// It implements fs.FileSystem; Close tears down both the client and ssh.
type Session struct {
	*fsi.SFTPFS
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// Dial starts "ssh -s host sftp" and speaks SFTP over its stdin/stdout.
func Dial(loc Location, explicitKeyPath string) (*Session, error) {
	if !loc.IsRemote {
		return nil, fmt.Errorf("%q is not a remote location", loc.String())
	}
	sshCmd := SSHSubsystemCommand(loc, explicitKeyPath, "sftp")
	sshCmd.Stderr = os.Stderr

	sshStdin, err := sshCmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("SFTP stdin pipe failed: %w", err)
	}
	sshStdout, err := sshCmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("SFTP stdout pipe failed: %w", err)
	}
	fmte.PrintfV("Connecting to %s...\n", loc.SSHSpec())
	if err := sshCmd.Start(); err != nil {
		return nil, fmt.Errorf("SFTP ssh command failed: %w", err)
	}

	client, err := sftp.NewClientPipe(sshStdout, sshStdin)
	if err != nil {
		_ = sshCmd.Process.Kill()
		_ = sshCmd.Wait()
		return nil, fmt.Errorf("SFTP connection to %s failed: %w", loc.SSHSpec(), err)
	}
	return &Session{
		SFTPFS: fsi.NewSFTPFS(client),
		cmd:    sshCmd,
		stdin:  sshStdin,
	}, nil
}

func (s *Session) Close() error {
	clientErr := s.SFTPFS.Close()
	_ = s.stdin.Close()
	waitErr := s.cmd.Wait()
	if clientErr != nil {
		return clientErr
	}
	return waitErr
}
