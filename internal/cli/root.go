// Package cli provides the sqlcanon command line interface: parse SQL in a
// chosen dialect and print its canonical form or classification.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sqlcanon/pkg/sql/dialect"
	"sqlcanon/pkg/sql/parser"
)

var log = logrus.New()

// rootOptions holds the persistent flag values for one command invocation.
type rootOptions struct {
	cfgFile     string
	dialectFlag string
	verbose     bool
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "sqlcanon",
		Short: "sqlcanon - SQL parsing and canonical formatting",
		Long: `sqlcanon parses SQL statements in a chosen dialect and prints their
canonical form: backtick-quoted identifiers, uppercase keywords and fully
parenthesized conditions, independent of how the input was written.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default sqlcanon.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.dialectFlag, "dialect", "", "SQL dialect: mysql or postgresql")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(newFmtCmd(opts))
	rootCmd.AddCommand(newTypeCmd(opts))
	return rootCmd
}

// Execute runs the CLI and returns its exit code.
func Execute() int {
	log.SetOutput(os.Stderr)
	if err := NewRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}

// resolveDialect applies the flag > env > config file > default precedence.
func (o *rootOptions) resolveDialect() (dialect.Dialect, error) {
	cfg, err := loadConfig(o.cfgFile)
	if err != nil {
		return dialect.MySQL, fmt.Errorf("loading config: %w", err)
	}
	if o.verbose || cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	name := cfg.Dialect
	if o.dialectFlag != "" {
		name = o.dialectFlag
	}
	d, err := dialect.FromString(name)
	if err != nil {
		return dialect.MySQL, err
	}
	log.WithField("dialect", d.String()).Debug("dialect resolved")
	return d, nil
}

// readStatements returns the SQL statements to process: the arguments if
// any, otherwise non-empty lines read from r.
func readStatements(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var stmts []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			stmts = append(stmts, line)
		}
	}
	return stmts, scanner.Err()
}

func newFmtCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [sql ...]",
		Short: "Print the canonical form of each statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.resolveDialect()
			if err != nil {
				return err
			}

			stmts, err := readStatements(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			var failed int
			for _, s := range stmts {
				q, err := parser.ParseQuery(d, s)
				if err != nil {
					log.WithField("input", s).Warn("parse failed")
					failed++
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), q.String())
			}
			if failed > 0 {
				return fmt.Errorf("%d statement(s) failed to parse", failed)
			}
			return nil
		},
	}
}

func newTypeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "type [sql ...]",
		Short: "Classify statements and show their canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.resolveDialect()
			if err != nil {
				return err
			}

			stmts, err := readStatements(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"#", "Type", "Canonical"})
			for i, s := range stmts {
				q, err := parser.ParseQuery(d, s)
				if err != nil {
					t.AppendRow(table.Row{i + 1, "ERROR", s})
					continue
				}
				t.AppendRow(table.Row{i + 1, q.QueryType(), q.String()})
			}
			t.Render()
			return nil
		},
	}
}
