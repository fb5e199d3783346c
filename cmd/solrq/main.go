package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aliics/solrq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop().Sugar()

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	queryFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "operator",
			Aliases: []string{"o"},
			Usage:   "Operator joining clauses (AND, OR)",
			Value:   "OR",
			EnvVars: []string{"SOLRQ_OPERATOR"},
		},
		&cli.BoolFlag{
			Name:    "wrap",
			Aliases: []string{"w"},
			Usage:   "Wrap each value in brackets",
			EnvVars: []string{"SOLRQ_WRAP"},
		},
	}

	return &cli.App{
		Name:      "solrq",
		Usage:     "Build Solr style search queries from field:value clauses",
		ArgsUsage: "field:value | field:value* | field:value^boost ...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"SOLRQ_LOG_LEVEL"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "build",
				Usage:     "Print the query built from the given clauses",
				ArgsUsage: "CLAUSE...",
				Action:    buildCommand,
				Flags:     queryFlags,
			},
			{
				Name:      "match",
				Usage:     "Run the query against an SQLite FTS table and print matching rowids",
				ArgsUsage: "CLAUSE...",
				Action:    matchCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the SQLite database",
						Required: true,
						EnvVars:  []string{"SOLRQ_DB"},
					},
					&cli.StringFlag{
						Name:    "table",
						Aliases: []string{"t"},
						Usage:   "FTS3/FTS4 table to match against",
						Value:   "documents",
					},
				}, queryFlags...),
			},
		},
	}
}

func buildCommand(c *cli.Context) error {
	q, err := queryFromArgs(c)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, q)
	return err
}

func matchCommand(c *cli.Context) error {
	q, err := queryFromArgs(c)
	if err != nil {
		return err
	}

	db, err := sql.Open("sqlite3", c.String("db"))
	if err != nil {
		return fmt.Errorf("open %s: %w", c.String("db"), err)
	}
	defer db.Close()

	ids, err := solrq.MatchContext(c.Context, db, c.String("table"), q)
	if err != nil {
		return err
	}
	logger.Infow("matched", "table", c.String("table"), "rows", len(ids))

	for _, id := range ids {
		if _, err = fmt.Fprintln(c.App.Writer, id); err != nil {
			return err
		}
	}
	return nil
}

func queryFromArgs(c *cli.Context) (*solrq.QueryBuilder, error) {
	if c.NArg() == 0 {
		return nil, errors.New("no clauses given")
	}

	op, err := solrq.ParseOperator(c.String("operator"))
	if err != nil {
		return nil, err
	}

	b, err := solrq.NewQueryBuilder(op, c.Bool("wrap"))
	if err != nil {
		return nil, err
	}

	for _, arg := range c.Args().Slice() {
		cl, err := parseClause(arg)
		if err != nil {
			return nil, err
		}
		cl.appendTo(b)
	}

	logger.Debugw("built query", "operator", op, "wrap", b.Wrap(), "query", b.String())
	return b, nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level zapcore.Level
	switch levelStr {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(c.App.ErrWriter)),
		level,
	)
	logger = zap.New(core).Sugar().Named("solrq")

	return nil
}
