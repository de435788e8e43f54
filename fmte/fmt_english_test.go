package fmte

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintersAndOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	restore := SetOutput(&out, &errOut)
	defer restore()

	Printf("found %d files\n", 12345)
	Print("done\n")
	PrintfErr("couldn't read %q\n", "/x")
	PrintfV("hidden unless verbose\n")

	assert.Equal(t, "found 12,345 files\ndone\n", out.String())
	assert.Equal(t, "couldn't read \"/x\"\n", errOut.String())
}
