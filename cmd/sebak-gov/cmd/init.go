package cmd

import (
	"fmt"
	"os"
	"runtime"

	logging "github.com/inconshreveable/log15"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"boscoin.io/sebak-gov/cmd/sebak-gov/common"
	"boscoin.io/sebak-gov/lib/api"
	sebakcommon "boscoin.io/sebak-gov/lib/common"
	"boscoin.io/sebak-gov/lib/governance"
	"boscoin.io/sebak-gov/lib/registry"
	"boscoin.io/sebak-gov/lib/storage"
)

const defaultLogLevel logging.Lvl = logging.LvlInfo

var (
	flagStorageConfigString string = sebakcommon.GetENVValue("SEBAK_GOV_STORAGE", "file://./db")
	flagConfig              string = sebakcommon.GetENVValue("SEBAK_GOV_CONFIG", "")
	flagHeight              string = sebakcommon.GetENVValue("SEBAK_GOV_HEIGHT", "0")
	flagLogLevel            string = sebakcommon.GetENVValue("SEBAK_GOV_LOG_LEVEL", defaultLogLevel.String())
	flagLogOutput           string = sebakcommon.GetENVValue("SEBAK_GOV_LOG_OUTPUT", "")
	flagFormat              string = sebakcommon.GetENVValue("SEBAK_GOV_FORMAT", "prettyjson")
)

var (
	storageConfig *storage.Config
	config        governance.Config
	height        uint64
	encode        common.Encode
	logLevel      logging.Lvl
	log           logging.Logger = logging.New("module", "main")

	st     *storage.LevelDBBackend
	roll   *registry.CitizenRoll
	engine *governance.Engine
)

var rootCmd = &cobra.Command{
	Use:   os.Args[0],
	Short: "sebak-gov, the staged proposal voting engine",
	Run: func(c *cobra.Command, args []string) {
		if len(args) < 1 {
			c.Usage()
		}
	},
}

func init() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	rootCmd.PersistentFlags().StringVar(&flagStorageConfigString, "storage", flagStorageConfigString, "storage uri, 'file:///path' or 'memory://'")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", flagConfig, "governance config yaml file")
	rootCmd.PersistentFlags().StringVar(&flagHeight, "height", flagHeight, "current block height")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", flagLogLevel, "log level, {crit, error, warn, info, debug}")
	rootCmd.PersistentFlags().StringVar(&flagLogOutput, "log-output", flagLogOutput, "set log output file")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", flagFormat, "output format, {json, prettyjson, yaml}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		common.PrintFlagsError(rootCmd, "", err)
	}
}

func SetArgs(s []string) {
	rootCmd.SetArgs(s)
}

// parseFlags reads the global flags and sets up the logging.
func parseFlags(c *cobra.Command) {
	var err error

	if storageConfig, err = storage.NewConfigFromString(flagStorageConfigString); err != nil {
		common.PrintFlagsError(c, "--storage", err)
	}

	config = governance.NewConfig()
	if len(flagConfig) > 0 {
		if config, err = governance.LoadConfig(flagConfig); err != nil {
			common.PrintFlagsError(c, "--config", err)
		}
	}

	if height, err = common.ParseHeight(flagHeight); err != nil {
		common.PrintFlagsError(c, "--height", err)
	}

	if encode, err = common.GetEncode(flagFormat); err != nil {
		common.PrintFlagsError(c, "--format", err)
	}

	if logLevel, err = logging.LvlFromString(flagLogLevel); err != nil {
		common.PrintFlagsError(c, "--log-level", err)
	}

	var formatter logging.Format
	if isatty.IsTerminal(os.Stderr.Fd()) {
		formatter = logging.TerminalFormat()
	} else {
		formatter = sebakcommon.JsonFormatEx(false, true)
	}
	logHandler := logging.StreamHandler(os.Stderr, formatter)

	if len(flagLogOutput) < 1 {
		flagLogOutput = "<stderr>"
	} else {
		if logHandler, err = logging.FileHandler(flagLogOutput, logging.JsonFormat()); err != nil {
			common.PrintFlagsError(c, "--log-output", err)
		}
	}

	log.SetHandler(logging.LvlFilterHandler(logLevel, logHandler))
	governance.SetLogging(logLevel, logHandler)
	registry.SetLogging(logLevel, logHandler)
	api.SetLogging(logLevel, logHandler)

	log.Debug(
		"parsed flags:",
		"\n\tstorage", flagStorageConfigString,
		"\n\tconfig", flagConfig,
		"\n\theight", height,
		"\n\tlog-level", flagLogLevel,
		"\n\tlog-output", flagLogOutput,
		"\n\tformat", flagFormat,
	)
}

// prepareEngine opens the storage and creates the `governance.Engine` over
// the constitution and the citizen roll.
func prepareEngine(c *cobra.Command) {
	parseFlags(c)

	var err error
	if st, err = storage.NewStorage(storageConfig); err != nil {
		log.Crit("failed to initialize storage", "error", err)
		os.Exit(1)
	}

	roll = registry.NewCitizenRoll(st)
	if engine, err = governance.NewEngine(
		st,
		config,
		registry.Constitution,
		roll,
		sebakcommon.FixedHeight(height),
		eventLogSink{},
	); err != nil {
		common.PrintFlagsError(c, "--config", err)
	}
}

func closeEngine() {
	if st != nil {
		st.Close()
	}
}

func output(v interface{}) {
	if err := encode(v, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to encode output; %v\n", err)
		os.Exit(1)
	}
}

// eventLogSink logs the events and passes them to the observer.
type eventLogSink struct{}

func (eventLogSink) Emit(e governance.Event) {
	log.Info("event", "type", e.Type(), "proposal", e.ProposalID(), "uid", e.Meta().UID)
	governance.ObserverSink{}.Emit(e)
}
