package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/m-manu/fsinspect/entity"
	"github.com/m-manu/fsinspect/fmte"
	"github.com/m-manu/fsinspect/inspector"
	"github.com/m-manu/fsinspect/permission"
	"github.com/m-manu/fsinspect/remote"
	flag "github.com/spf13/pflag"
)

// Constants indicating return codes of this tool, when run from command line
const (
	exitCodeSuccess = iota
	exitCodeInvalidArgs
	exitCodeInspectionError
	exitCodeRemoteError
)

const version = "1.0.0"

var flags struct {
	isHelp      func() bool
	isVersion   func() bool
	isVerbose   func() bool
	isTypesMode func() bool
	getConfig   func() inspectConfig
}

func exitWithUsage(format string, a ...any) {
	fmte.PrintfErr("error: "+format+"\n", a...)
	flag.Usage()
	os.Exit(exitCodeInvalidArgs)
}

func handlePanic() {
	err := recover()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Program exited unexpectedly. "+
			"Please report the below error to the author:\n"+
			"%+v\n", err)
		_, _ = fmt.Fprintln(os.Stderr, string(debug.Stack()))
		os.Exit(exitCodeInspectionError)
	}
}

func setupUsage() {
	flag.Usage = func() {
		fmte.PrintfErr("Run \"fsinspect --help\" for usage\n")
	}
}

func showHelpAndExit() {
	flag.CommandLine.SetOutput(os.Stdout)
	fmt.Printf(`fsinspect reports metadata of a file or directory: size, timestamps, owner, ` +
		`permissions, type and contents.

Usage:
	 fsinspect <flags> [path]
	 fsinspect <flags> [user@]host[:port]:path

where,
	path   Local file or directory, or a remote one reached over ssh/SFTP

flags: (all optional)
`)
	flag.PrintDefaults()
	fmt.Printf("\nMore details here: https://github.com/m-manu/fsinspect\n")
	os.Exit(exitCodeSuccess)
}

func setupHelpOpt() {
	helpPtr := flag.BoolP("help", "h", false, "display help")
	flags.isHelp = func() bool {
		return *helpPtr
	}
}

func setupVersionOpt() {
	versionPtr := flag.Bool("version", false, "display version")
	flags.isVersion = func() bool {
		return *versionPtr
	}
}

func setupVerboseOpt() {
	verbosePtr := flag.BoolP("verbose", "v", false, "print progress of remote sessions to stderr")
	flags.isVerbose = func() bool {
		return *verbosePtr
	}
}

func setupTypesOpt() {
	typesPtr := flag.Bool("types", false, "list the file types known to the type inference and exit")
	flags.isTypesMode = func() bool {
		return *typesPtr
	}
}

func setupInspectOpts() {
	safePtr := flag.BoolP("safe", "s", false,
		"report missing paths with sentinels (-1, the not-found text, empty lists) instead of failing")
	notFoundPtr := flag.String("not-found", inspector.DefaultNotFound,
		"text reported for a missing path in safe mode")
	contentPtr := flag.StringP("content", "t", "all", "content type for --count and --list: file, folder or all")
	countPtr := flag.BoolP("count", "c", false, "count the contents of a directory instead of describing it")
	listPtr := flag.BoolP("list", "l", false, "list the contents of a directory instead of describing it")
	permissionPtr := flag.StringP("permission", "p", "",
		"print only the permission string of owner, group, others or all")
	numericPtr := flag.BoolP("numeric", "n", false, "print permissions as octal digits (with --permission)")
	recursivePtr := flag.BoolP("recursive", "r", false, "make --count and --list cover the whole subtree")
	granularityPtr := flag.StringP("granularity", "g", "datetime", "timestamp precision: date, time or datetime")
	formatPtr := flag.String("format", formatText, "report format: text or yaml")
	humanPtr := flag.Bool("human", false, "also show the size in KiB, MiB, etc.")
	permissionsPtr := flag.String("permissions", permissionsViaStat,
		"how permissions are read: stat (runs \"stat -c\") or mode (derived from mode bits)")
	timeoutPtr := flag.Duration("timeout", permission.DefaultTimeout, "time limit of each stat invocation")
	sshKeyPtr := flag.String("ssh-key", "", "private key for remote paths (default: ssh's own choice)")
	flags.getConfig = func() inspectConfig {
		content, err := entity.ParseContentType(*contentPtr)
		if err != nil {
			exitWithUsage("%v", err)
		}
		granularity, err := entity.ParseGranularity(*granularityPtr)
		if err != nil {
			exitWithUsage("%v", err)
		}
		if *formatPtr != formatText && *formatPtr != formatYAML {
			exitWithUsage("--format should be %s or %s", formatText, formatYAML)
		}
		if *permissionsPtr != permissionsViaStat && *permissionsPtr != permissionsViaMode {
			exitWithUsage("--permissions should be %s or %s", permissionsViaStat, permissionsViaMode)
		}
		var scope *entity.PermissionScope
		if *permissionPtr != "" {
			parsed, err := entity.ParsePermissionScope(*permissionPtr)
			if err != nil {
				exitWithUsage("%v", err)
			}
			scope = &parsed
		}
		if (*countPtr && *listPtr) || (scope != nil && (*countPtr || *listPtr)) {
			exitWithUsage("only one of --count, --list and --permission can be used")
		}
		if *timeoutPtr <= 0 {
			*timeoutPtr = permission.DefaultTimeout
		}
		return inspectConfig{
			safeFetch:   *safePtr,
			notFound:    *notFoundPtr,
			content:     content,
			count:       *countPtr,
			list:        *listPtr,
			scope:       scope,
			numeric:     *numericPtr,
			recursive:   *recursivePtr,
			granularity: granularity,
			format:      *formatPtr,
			human:       *humanPtr,
			permissions: *permissionsPtr,
			timeout:     *timeoutPtr,
			sshKeyPath:  *sshKeyPtr,
		}
	}
}

func setupFlags() {
	setupHelpOpt()
	setupVersionOpt()
	setupVerboseOpt()
	setupTypesOpt()
	setupInspectOpts()
	setupUsage()
}

func main() {
	defer handlePanic()
	setupFlags()
	flag.Parse()
	if flags.isHelp() {
		showHelpAndExit()
	}
	if flags.isVersion() {
		fmte.Printf("fsinspect %s\n", version)
		os.Exit(exitCodeSuccess)
	}
	if flags.isTypesMode() {
		printTypes()
		os.Exit(exitCodeSuccess)
	}
	if flag.NArg() != 1 {
		exitWithUsage("exactly one path expected")
	}
	if flags.isVerbose() {
		fmte.VerboseOn()
	}
	cfg := flags.getConfig()
	loc, err := remote.ParseLocation(flag.Arg(0))
	if err != nil {
		exitWithUsage("%v", err)
	}
	start := time.Now()
	in, closeFn, err := openInspector(loc, cfg)
	if err != nil {
		fmte.PrintfErr("error: %+v\n", err)
		os.Exit(exitCodeRemoteError)
	}
	inspectErr := inspect(in, cfg)
	if closeErr := closeFn(); closeErr != nil {
		fmte.PrintfV("closing %s: %+v\n", loc.String(), closeErr)
	}
	if inspectErr != nil {
		fmte.PrintfErr("error while inspecting %s: %+v\n", loc.String(), inspectErr)
		os.Exit(exitCodeInspectionError)
	}
	fmte.PrintfV("Inspected %s in %s\n", loc.String(), time.Since(start).Round(time.Millisecond))
}
