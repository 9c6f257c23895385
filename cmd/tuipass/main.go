// Package main provides the CLI entrypoint for tuipass.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuipass/internal/charset"
	"github.com/verte-zerg/tuipass/internal/clipboard"
	"github.com/verte-zerg/tuipass/internal/config"
	"github.com/verte-zerg/tuipass/internal/generator"
	"github.com/verte-zerg/tuipass/internal/model"
	"github.com/verte-zerg/tuipass/internal/report"
	"github.com/verte-zerg/tuipass/internal/session"
	"github.com/verte-zerg/tuipass/internal/strength"
	"github.com/verte-zerg/tuipass/internal/tui"
)

const (
	defaultLength     = 16
	defaultRequireAll = true
	defaultCount      = 1
)

var defaultGroups = []string{
	string(model.UpperLetters),
	string(model.LowerLetters),
	string(model.Numbers),
}

var (
	genLength         int
	genGroups         []string
	genExtra          string
	genExclude        string
	genExcludeSimilar bool
	genRequireAll     bool
	genHide           bool

	genCount int
	genCopy  bool
	genScore bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuipass",
		Short:         "TUI password generator",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runInteractiveCmd,
	}
	addGeneratorFlags(rootCmd)
	rootCmd.Flags().BoolVar(&genHide, "hide", false, "start with the password masked")

	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newGroupsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addGeneratorFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&genLength, "length", defaultLength, "password length")
	cmd.Flags().StringSliceVar(&genGroups, "group", defaultGroups, "character groups to use (see: tuipass groups)")
	cmd.Flags().StringVar(&genExtra, "extra", "", "extra characters to include")
	cmd.Flags().StringVar(&genExclude, "exclude", "", "characters to exclude")
	cmd.Flags().BoolVar(&genExcludeSimilar, "exclude-similar", false, "exclude look-alike characters ("+charset.Similar+")")
	cmd.Flags().BoolVar(&genRequireAll, "require-all", defaultRequireAll, "include at least one character from every selected group")
}

func runInteractiveCmd(cmd *cobra.Command, _ []string) error {
	cfg, hide, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	m := tui.NewModel(cfg, generator.New(), clipboard.System{}, hide)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print generated passwords",
		Args:  cobra.NoArgs,
		RunE:  runGenCmd,
	}
	addGeneratorFlags(cmd)
	cmd.Flags().IntVar(&genCount, "count", defaultCount, "number of passwords")
	cmd.Flags().BoolVar(&genCopy, "copy", false, "copy the last password to the clipboard")
	cmd.Flags().BoolVar(&genScore, "score", false, "print entropy and strength next to each password")
	return cmd
}

func runGenCmd(cmd *cobra.Command, _ []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if genCount <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	if !session.Ready(cfg) {
		return gateError(cfg)
	}

	out := cmd.OutOrStdout()
	color := shouldUseColor(out)
	gen := generator.New()
	table := report.Table{
		Headers:    []string{"Password", "Entropy", "Strength"},
		RightAlign: map[int]bool{1: true},
	}
	last := ""
	for i := 0; i < genCount; i++ {
		res, err := session.Evaluate(cfg, gen)
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
		last = res.Password
		if !genScore {
			if _, err := fmt.Fprintln(out, res.Password); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			continue
		}
		table.Rows = append(table.Rows, []string{
			res.Password,
			strength.FormatBits(res.Score.Entropy),
			colorize(strength.Label(res.Score.Tier), res.Score.Tier, color),
		})
	}
	if genScore {
		if err := table.Write(out); err != nil {
			return err
		}
	}
	if genCopy {
		if err := (clipboard.System{}).WriteAll(last); err != nil {
			logErrf("failed to copy to clipboard: %v\n", err)
		} else {
			logErrln("Copied to clipboard")
		}
	}
	return nil
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score [password]",
		Short: "Estimate the strength of a password",
		Long:  "Estimate the strength of a password. Without an argument the password is read from the terminal without echo, or from the first line of stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScoreCmd,
	}
}

func runScoreCmd(cmd *cobra.Command, args []string) error {
	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		pw, err := readPassword(cmd.InOrStdin())
		if err != nil {
			return err
		}
		password = pw
	}
	score := strength.Estimate(password)
	out := cmd.OutOrStdout()
	line := strength.FormatBits(score.Entropy) + "  " + colorize(strength.Label(score.Tier), score.Tier, shouldUseColor(out))
	if _, err := fmt.Fprintln(out, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func readPassword(in io.Reader) (string, error) {
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		logErrf("Password: ")
		raw, err := term.ReadPassword(int(file.Fd()))
		logErrln()
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newGroupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List character groups",
		Args:  cobra.NoArgs,
		RunE:  runGroupsCmd,
	}
}

func runGroupsCmd(cmd *cobra.Command, _ []string) error {
	table := report.Table{
		Headers:    []string{"Group", "Size", "Members"},
		RightAlign: map[int]bool{1: true},
	}
	for _, g := range charset.Groups() {
		table.Rows = append(table.Rows, []string{
			string(g.ID),
			strconv.Itoa(len([]rune(g.Members))),
			g.Members,
		})
	}
	return table.Write(cmd.OutOrStdout())
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resolveConfig layers the config file under explicitly set flags.
func resolveConfig(cmd *cobra.Command) (model.Config, bool, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, false, fmt.Errorf("failed to load config: %w", err)
	}
	g := fileCfg.Generator
	applyIntConfig(cmd, "length", &genLength, g.Length)
	applyStringSliceConfig(cmd, "group", &genGroups, g.Groups)
	applyStringConfig(cmd, "extra", &genExtra, g.Extra)
	applyStringConfig(cmd, "exclude", &genExclude, g.Exclude)
	applyBoolConfig(cmd, "exclude-similar", &genExcludeSimilar, g.ExcludeSimilar)
	applyBoolConfig(cmd, "require-all", &genRequireAll, g.RequireAll)
	applyBoolConfig(cmd, "hide", &genHide, g.Hide)

	cfg := model.Config{
		Extra:          genExtra,
		Exclude:        genExclude,
		ExcludeSimilar: genExcludeSimilar,
		RequireAll:     genRequireAll,
		Length:         genLength,
	}
	for _, id := range genGroups {
		id = strings.TrimSpace(strings.ToLower(id))
		if id == "" {
			continue
		}
		cfg.Groups = append(cfg.Groups, model.GroupID(id))
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, false, err
	}
	return cfg, genHide, nil
}

func validateConfig(cfg model.Config) error {
	if cfg.Length <= 0 {
		return fmt.Errorf("--length must be > 0")
	}
	if cfg.Length > tui.MaxLength {
		return fmt.Errorf("--length must be <= %d", tui.MaxLength)
	}
	for _, id := range cfg.Groups {
		if !charset.IsGroup(id) {
			return fmt.Errorf("unknown group %q (see: tuipass groups)", id)
		}
	}
	return nil
}

// gateError explains why cfg cannot produce a password.
func gateError(cfg model.Config) error {
	count := charset.SelectedCount(cfg)
	if count == 0 {
		return fmt.Errorf("select at least one --group or --extra characters")
	}
	if blocked := charset.FullyExcluded(cfg); len(blocked) > 0 {
		return fmt.Errorf("group %q is fully excluded", blocked[0])
	}
	if count > cfg.Length {
		return fmt.Errorf("--length must be at least %d to cover every selected group", count)
	}
	return fmt.Errorf("no characters left after exclusions")
}

func colorize(text string, tier model.Tier, color bool) string {
	if !color {
		return text
	}
	return lipgloss.NewStyle().Foreground(strength.Color(tier)).Render(text)
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyStringSliceConfig(cmd *cobra.Command, name string, target, value *[]string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = append([]string(nil), (*value)...)
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuipass configuration
# Uncomment a value to enable it. CLI flags override config values.

[generator]
# length = %d                    # Password length
# groups = [%s]  # See: tuipass groups
# extra = ""                     # Extra characters to include
# exclude = ""                   # Characters to exclude
# exclude-similar = false        # Exclude %s
# require-all = %t              # One character from every selected group
# hide = false                   # Start the TUI with the password masked
`,
		defaultLength,
		quoteList(defaultGroups),
		charset.Similar,
		defaultRequireAll,
	)
}

func quoteList(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		quoted = append(quoted, strconv.Quote(item))
	}
	return strings.Join(quoted, ", ")
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
