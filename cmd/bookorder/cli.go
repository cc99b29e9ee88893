package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/n2code/bookorder"
	"github.com/n2code/bookorder/cmd/bookorder/flags"
	"github.com/n2code/bookorder/internal/config"
	"github.com/n2code/bookorder/internal/output"
)

type CliRequest struct {
	verbose      bool
	quiet        bool
	plain        bool
	noConfirm    bool
	settingsFile string
	action       string
	actionFlags  map[string]interface{}
	actionArgs   []string
	index        int //mv, mv-dir
}

// pathList collects the values of a repeatable flag.
type pathList []string

func (l *pathList) String() string {
	return strings.Join(*l, ",")
}

func (l *pathList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

var errOutlineOutdated = errors.New("outline is out of date")

func parseFlags(args []string, out io.Writer) (request *CliRequest, exitCode int) {
	general := flag.NewFlagSet("bookorder", flag.ContinueOnError)
	general.SetOutput(out)
	general.Usage = func() {
		fmt.Fprint(general.Output(), `
Usage:
   bookorder [-v|-q] [-plain] [-y] [-config FILE] [-h] <ACTION> [FLAG] [TARGET]

 ACTIONs:  create  diff  check  mv  mv-dir  renumber  tree  status

`)
		general.PrintDefaults()
		fmt.Fprint(general.Output(), `
 FLAG(s) and TARGET(s) are action-specific.
 You can read the help on any action:
    bookorder <ACTION> -h

`)
	}

	request = &CliRequest{}
	var generalHelpRequested bool
	general.BoolVar(&request.verbose, flags.Verbose, false, "Output more details on what is done (verbose mode)")
	general.BoolVar(&request.quiet, flags.Quiet, false, "Output as little as possible, i.e. only requested information (quiet mode)")
	general.BoolVar(&request.plain, flags.Plain, false, "Never use colors or other terminal escape sequences")
	general.BoolVar(&request.noConfirm, flags.NoConfirm, false, "Apply planned renames without asking for confirmation")
	general.StringVar(&request.settingsFile, flags.Settings, "", "Read settings from FILE instead of "+config.FileName+" in the working directory")
	general.BoolVar(&generalHelpRequested, flags.Help, false, "Display general usage help")

	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(out, "%s\nUsage help: bookorder -h\n", err)
			exitCode = 2
			request = nil
		}
	}()

	if parseErr := general.Parse(args); parseErr != nil {
		if errors.Is(parseErr, flag.ErrHelp) {
			return nil, 0
		}
		return nil, 2 //the flag package already reported the problem
	}
	if generalHelpRequested {
		general.Usage()
		return nil, 0
	}
	if general.NArg() == 0 {
		err = errors.New("No action given!")
		return
	}
	if request.verbose && request.quiet {
		err = errors.New("Quiet mode and verbose mode are mutually exclusive!")
		return
	}

	request.action = general.Arg(0)
	request.actionFlags = make(map[string]interface{})
	request.actionArgs = general.Args()[1:]
	actionDescriptionIndent := "  "
	actionDescription := actionDescriptionIndent
	flagSpecification := ""
	argumentSpecification := ""

	actionParams := flag.NewFlagSet(request.action+" action", flag.ContinueOnError)
	actionParams.SetOutput(out)
	actionParams.Usage = func() {
		fmt.Fprintf(actionParams.Output(), `
Usage of %s action:
   bookorder [MODE] %s%s%s

%s
`, request.action, request.action, flagSpecification, argumentSpecification, actionDescription)
		if len(flagSpecification) > 0 {
			fmt.Fprint(actionParams.Output(), `
 Available flags:
`)
			actionParams.PrintDefaults()
		}
		fmt.Fprint(actionParams.Output(), `
 Global MODE documentation can be shown by:
    bookorder -h

`)
	}
	parseActionParams := func() bool {
		if parseErr := actionParams.Parse(request.actionArgs); parseErr != nil {
			if errors.Is(parseErr, flag.ErrHelp) {
				exitCode = 0
			} else {
				exitCode = 2
			}
			return false
		}
		request.actionArgs = actionParams.Args()
		return true
	}
	registerOutputFlag := func() {
		request.actionFlags[flags.Output] = actionParams.String(flags.Output, "", "directory holding SUMMARY.md (default from settings, otherwise \".\")")
	}
	registerWidthFlag := func() {
		request.actionFlags[flags.Width] = actionParams.Int(flags.Width, 0, "digits of the numeric prefix of renamed entries (default from settings, otherwise 2)")
	}

ActionParamCheck:
	switch request.action {
	case "create", "diff":
		flagSpecification = " [-source DIR]... [-output DIR] [-ignore PATH]... [-include-...] [-relative-links]"
		switch request.action {
		case "create":
			actionDescription += "Generate SUMMARY.md from the numbered files and directories below the\n" +
				actionDescriptionIndent + "source directories. Numeric prefixes define the order and are left out\n" +
				actionDescriptionIndent + "of the titles. Directories with a README.md become sections."
		case "diff":
			actionDescription += "Show how a freshly generated SUMMARY.md would differ from the one on\n" +
				actionDescriptionIndent + "disk without writing anything. Exits with 1 if it is out of date."
		}
		sources, ignore := &pathList{}, &pathList{}
		actionParams.Var(sources, flags.Source, "directory to generate the outline from, repeat for several\n(default from settings, otherwise \".\")")
		registerOutputFlag()
		actionParams.Var(ignore, flags.Ignore, "file or directory to leave out including everything below it, repeatable")
		request.actionFlags[flags.Source] = sources
		request.actionFlags[flags.Ignore] = ignore
		request.actionFlags[flags.IncludeUnnumberedDirectories] = actionParams.Bool(flags.IncludeUnnumberedDirectories, false,
			"treat directories without numeric prefix like numbered ones")
		request.actionFlags[flags.IncludeContentWithoutSection] = actionParams.Bool(flags.IncludeContentWithoutSection, false,
			"list documents of directories that lack a README.md")
		request.actionFlags[flags.RelativeLinks] = actionParams.Bool(flags.RelativeLinks, false,
			"link relative to the output directory instead of absolute")
		if !parseActionParams() {
			return nil, exitCode
		}
		if actionParams.NArg() > 0 {
			err = errors.New("command accepts no arguments, only flags")
			break ActionParamCheck
		}
	case "check":
		flagSpecification = " [-output DIR]"
		actionDescription += "Verify that every link in SUMMARY.md points to an existing file."
		registerOutputFlag()
		if !parseActionParams() {
			return nil, exitCode
		}
		if actionParams.NArg() > 0 {
			err = errors.New("command accepts no arguments, only flags")
			break ActionParamCheck
		}
	case "mv", "mv-dir":
		flagSpecification = " [-width N] [-no-summary]"
		subject, from := "file", "FROM_FILE"
		if request.action == "mv-dir" {
			subject, from = "directory", "FROM_DIR"
		}
		argumentSpecification = " " + from + " TO_DIR INDEX"
		actionDescription += fmt.Sprintf("Move the %s %s to position INDEX (starting at 1) inside TO_DIR.\n", subject, from) +
			actionDescriptionIndent + "Entries at or after INDEX move up by one, the directory the entry\n" +
			actionDescriptionIndent + "is taken from is renumbered to close the gap. README.md is never\n" +
			actionDescriptionIndent + "numbered and cannot be moved. SUMMARY.md is regenerated afterwards."
		registerWidthFlag()
		request.actionFlags[flags.NoSummary] = actionParams.Bool(flags.NoSummary, false, "do not regenerate SUMMARY.md after the move")
		if !parseActionParams() {
			return nil, exitCode
		}
		if actionParams.NArg() != 3 {
			err = errors.New("bad number of arguments, exactly three expected")
			break ActionParamCheck
		}
		index, convErr := strconv.Atoi(actionParams.Arg(2))
		if convErr != nil {
			err = fmt.Errorf(`INDEX must be a number, got "%s"`, actionParams.Arg(2))
			break ActionParamCheck
		}
		request.index = index
	case "renumber":
		flagSpecification = " [-width N]"
		argumentSpecification = " DIR"
		actionDescription += "Rename the numbered entries of DIR to a contiguous sequence starting\n" +
			actionDescriptionIndent + "at 1, keeping their order. Duplicate prefixes are refused."
		registerWidthFlag()
		if !parseActionParams() {
			return nil, exitCode
		}
		if actionParams.NArg() != 1 {
			err = errors.New("bad number of arguments, exactly one expected")
			break ActionParamCheck
		}
	case "tree", "status":
		argumentSpecification = " [DIR]"
		switch request.action {
		case "tree":
			actionDescription += "Display DIR (default: working directory) as a tree. Directories whose\n" +
				actionDescriptionIndent + "numbering has gaps or duplicates are marked."
		case "status":
			actionDescription += "Check the numbering of every directory below DIR (default: working\n" +
				actionDescriptionIndent + "directory) and list all gaps and duplicates."
		}
		if !parseActionParams() {
			return nil, exitCode
		}
		if actionParams.NArg() > 1 {
			err = errors.New("too many arguments")
			break ActionParamCheck
		}
	default:
		err = fmt.Errorf(`unknown action "%s"`, request.action)
	}
	return
}

func (rq *CliRequest) loadSettings() (config.Config, error) {
	path, required := config.FileName, false
	if rq.settingsFile != "" {
		path, required = rq.settingsFile, true
	}
	settings, err := config.Load(path, required)
	if err != nil {
		return settings, err
	}

	if sources, ok := rq.actionFlags[flags.Source].(*pathList); ok && len(*sources) > 0 {
		settings.SourceDirs = *sources
	}
	if ignore, ok := rq.actionFlags[flags.Ignore].(*pathList); ok {
		settings.Ignore = append(settings.Ignore, *ignore...)
	}
	if outputDir, ok := rq.actionFlags[flags.Output].(*string); ok && *outputDir != "" {
		settings.OutputDir = *outputDir
	}
	if width, ok := rq.actionFlags[flags.Width].(*int); ok && *width != 0 {
		settings.Width = *width
	}
	enable := func(setting *bool, flagName string) {
		if set, ok := rq.actionFlags[flagName].(*bool); ok && *set {
			*setting = true
		}
	}
	enable(&settings.IncludeUnnumberedDirectories, flags.IncludeUnnumberedDirectories)
	enable(&settings.IncludeDirectoryContentWithoutSection, flags.IncludeContentWithoutSection)
	enable(&settings.RelativeLinks, flags.RelativeLinks)
	if skip, ok := rq.actionFlags[flags.NoSummary].(*bool); ok && *skip {
		settings.UpdateSummaryAfterMove = false
	}
	if rq.noConfirm {
		settings.AssumeYes = true
	}
	return settings, settings.Validate()
}

func (rq *CliRequest) confirmation(settings config.Config, allowEscapes bool) bookorder.RequestChoice {
	if settings.AssumeYes || !term.IsTerminal(int(os.Stdin.Fd())) {
		return AutoChooseDefaultOption(rq.quiet)
	}
	return PromptUser(allowEscapes)
}

func (rq *CliRequest) target() string {
	if len(rq.actionArgs) > 0 {
		return rq.actionArgs[0]
	}
	return "."
}

func (rq *CliRequest) execute() error {
	settings, err := rq.loadSettings()
	if err != nil {
		return err
	}

	var createConfig bookorder.CreateConfig
	if rq.verbose {
		createConfig.Verbosity = bookorder.VerboseMode
	}
	if rq.quiet {
		createConfig.Verbosity = bookorder.QuietMode
	}
	allowEscapes := !rq.plain && output.EscapesSupported()
	createConfig.Plain = !allowEscapes
	createConfig.Confirm = rq.confirmation(settings, allowEscapes)
	api := bookorder.New(createConfig)

	switch rq.action {
	case "create":
		return api.GenerateOutline(bookorder.OutlineRequestFrom(settings))
	case "diff":
		changed, err := api.DiffOutline(bookorder.OutlineRequestFrom(settings))
		if err != nil {
			return err
		}
		if changed {
			return errOutlineOutdated
		}
	case "check":
		return api.CheckOutline(settings.OutputDir)
	case "mv", "mv-dir":
		request := bookorder.RelocateRequest{
			Source:      rq.actionArgs[0],
			Destination: rq.actionArgs[1],
			Index:       rq.index,
			Width:       settings.Width,
			Kind:        bookorder.FileKind,
		}
		if rq.action == "mv-dir" {
			request.Kind = bookorder.DirectoryKind
		}
		if settings.UpdateSummaryAfterMove {
			update := bookorder.OutlineRequestFrom(settings)
			request.UpdateOutline = &update
		}
		return api.Relocate(request)
	case "renumber":
		return api.Renumber(rq.actionArgs[0], settings.Width)
	case "tree":
		return api.PrintTree(rq.target())
	case "status":
		return api.PrintOrderStatus(rq.target())
	default:
		panic("bad action")
	}
	return nil
}

func main() {
	rq, rc := parseFlags(os.Args[1:], os.Stderr)
	if rc != 0 || rq == nil {
		os.Exit(rc)
	}
	if err := rq.execute(); err != nil {
		if !(rq.quiet && errors.Is(err, errOutlineOutdated)) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
	os.Exit(0)
}
