package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/m-manu/fsinspect/bytesutil"
	"github.com/m-manu/fsinspect/classify"
	"github.com/m-manu/fsinspect/entity"
	"github.com/m-manu/fsinspect/fmte"
	fsi "github.com/m-manu/fsinspect/fs"
	"github.com/m-manu/fsinspect/inspector"
	"github.com/m-manu/fsinspect/permission"
	"github.com/m-manu/fsinspect/remote"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

const (
	permissionsViaStat = "stat"
	permissionsViaMode = "mode"
)

// inspectConfig is what the command line asks of a single inspection
type inspectConfig struct {
	safeFetch   bool
	notFound    string
	content     entity.ContentType
	count       bool
	list        bool
	scope       *entity.PermissionScope
	numeric     bool
	recursive   bool
	granularity entity.DateTimeGranularity
	format      string
	human       bool
	permissions string
	timeout     time.Duration
	sshKeyPath  string
}

// openInspector builds a PathInspector for loc. For remote locations it dials an
// SFTP session, which the returned close function tears down.
func openInspector(loc remote.Location, cfg inspectConfig) (*inspector.PathInspector, func() error, error) {
	var fsys fsi.FileSystem = fsi.NewLocalFS()
	statQuerier := &permission.StatQuerier{Command: permission.LocalStatCommand, Timeout: cfg.timeout}
	closeFn := fsys.Close
	if loc.IsRemote {
		session, err := remote.Dial(loc, cfg.sshKeyPath)
		if err != nil {
			return nil, nil, err
		}
		fsys = session
		statQuerier.Command = remote.StatCommand(loc, cfg.sshKeyPath)
		closeFn = session.Close
	}
	var querier permission.Querier = statQuerier
	if cfg.permissions == permissionsViaMode {
		querier = permission.NewModeQuerier(fsys)
	}
	in := inspector.New(loc.Path, inspector.Options{
		SafeFetch:   cfg.safeFetch,
		NotFound:    cfg.notFound,
		FS:          fsys,
		Permissions: querier,
	})
	return in, closeFn, nil
}

// inspect prints a count, a listing, a permission string or a report of the
// inspected path, as cfg selects
func inspect(in *inspector.PathInspector, cfg inspectConfig) error {
	switch {
	case cfg.scope != nil:
		fmte.Print(in.Permission(*cfg.scope, cfg.numeric, false), "\n")
	case cfg.count:
		var count int64
		var err error
		if cfg.recursive {
			count, err = in.CountRecursive(cfg.content)
		} else {
			count, err = in.CountImmediate(cfg.content)
		}
		if err != nil {
			return err
		}
		fmte.Print(strconv.FormatInt(count, 10), "\n")
	case cfg.list:
		var listing []string
		var err error
		if cfg.recursive {
			listing, err = in.ListSubtree(cfg.content)
		} else {
			listing, err = in.ListImmediate(cfg.content)
		}
		if err != nil {
			return err
		}
		sort.Strings(listing)
		for _, p := range listing {
			fmte.Print(p, "\n")
		}
	default:
		r, err := in.Report(cfg.granularity)
		if err != nil {
			return err
		}
		rendered, err := renderReport(r, cfg.format, cfg.human)
		if err != nil {
			return err
		}
		fmte.Print(rendered)
	}
	return nil
}

type humanReport struct {
	entity.Report `yaml:",inline"`
	SizeHuman     string `yaml:"size_human"`
}

func renderReport(r entity.Report, format string, human bool) (string, error) {
	switch format {
	case formatText:
		text := r.String()
		if human && r.Size >= 0 {
			text = strings.Replace(text, fmt.Sprintf("Size: %d\n", r.Size),
				fmt.Sprintf("Size: %s (%d bytes)\n", bytesutil.BinaryFormat(r.Size), r.Size), 1)
		}
		return text, nil
	case formatYAML:
		var doc any = r
		if human && r.Size >= 0 {
			doc = humanReport{Report: r, SizeHuman: bytesutil.BinaryFormat(r.Size)}
		}
		out, err := yaml.Marshal(doc)
		if err != nil {
			return "", fmt.Errorf("couldn't encode report: %w", err)
		}
		return string(out), nil
	}
	return "", fmt.Errorf("unknown output format %q", format)
}

// printTypes prints the classification table in the order it is evaluated
func printTypes() {
	for _, b := range classify.Buckets() {
		extensions := b.Extensions.ToSlice()
		sort.Strings(extensions)
		fmte.Printf("%-28s %s\n", b.Label, strings.Join(extensions, ", "))
	}
	fmte.Printf("%-28s %s\n", classify.FolderLabel, "(directories)")
	fmte.Printf("%-28s %s\n", classify.UnknownLabel, "(anything else)")
}
