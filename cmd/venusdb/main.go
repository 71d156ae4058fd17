// Command venusdb is the interactive front end for the engine: it reads
// statements from stdin, terminated by ';', and prints their ResultSet.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/karthikeyaspace/venus-db/config"
	"github.com/karthikeyaspace/venus-db/engine"
	"github.com/karthikeyaspace/venus-db/storage/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	dbDir    string
	logLevel string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "venusdb",
		Short: "A single-user relational database engine",
		RunE:  runRepl,
	}

	root.PersistentFlags().StringVar(&dbDir, "db-dir", config.Default().DBDir,
		"directory holding one <name>.db file per database")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"log level: trace, debug, info, warn, error, fatal, or panic")

	return root
}

func runRepl(cmd *cobra.Command, args []string) error {
	ll, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(ll)

	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return err
	}

	e := engine.New(dbDir)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	var buf strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		buf.WriteString(line)
		buf.WriteByte('\n')

		if !strings.Contains(line, ";") {
			continue
		}

		query := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(buf.String()), ";"))
		buf.Reset()
		if query == "" {
			continue
		}

		rs := e.Execute(query)
		printResult(out, rs)
		if rs.Exited {
			return nil
		}
	}
	return scanner.Err()
}

// printResult renders a ResultSet: an aligned table for tuple results,
// otherwise a single message line.
func printResult(out io.Writer, rs engine.ResultSet) {
	if !rs.Success {
		fmt.Fprintf(out, "Failed to execute query: %s\n", rs.Message)
		return
	}
	if rs.Tuples == nil {
		fmt.Fprintln(out, rs.Message)
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(rs.Tuples.Schema.Names(), "\t"))
	for _, row := range rs.Tuples.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatValue(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}

func formatValue(v types.Value) string {
	switch v.Kind {
	case types.Int:
		return fmt.Sprintf("%d", v.Int)
	case types.Float:
		return fmt.Sprintf("%g", v.Float)
	default:
		return v.Str
	}
}
