package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zidaye/odbc-bridge/app/bridge"
	"github.com/zidaye/odbc-bridge/app/config"
	"github.com/zidaye/odbc-bridge/app/odbc"
	"github.com/zidaye/odbc-bridge/app/render"
	"github.com/zidaye/odbc-bridge/common"
)

var DemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Materialize a canned result set and render it as a table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDemo(cmd)
	},
}

const configFlag = "config"

func init() {
	DemoCmd.Flags().StringP(configFlag, "c", "", "path to tool config file")
}

func runDemo(cmd *cobra.Command) error {
	configPath, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return fmt.Errorf("get config flag: %v", err)
	}

	cfg := &config.Config{}

	if configPath != "" {
		cfg, err = config.NewConfigFromPath(configPath)
		if err != nil {
			return fmt.Errorf("new config: %w", err)
		}
	}

	logger, err := common.NewLoggerFromConfig(cfg.Logger)
	if err != nil {
		return fmt.Errorf("new logger from config: %w", err)
	}

	defer func() { _ = logger.Sync() }()

	return demo(logger, cmd.OutOrStdout(), cfg.Render)
}

// demo walks the whole pipeline on a canned result set: resolve the layout
// of each column, materialize the driver-shaped buffers, render the cells.
func demo(logger *zap.Logger, w io.Writer, renderCfg config.RenderConfig) error {
	descriptors := []bridge.ColumnDescriptor{
		{Name: "id", DataType: odbc.TypeInteger, Nullable: false},
		{Name: "name", DataType: odbc.TypeVarchar, Nullable: true},
		{Name: "score", DataType: odbc.TypeDouble, Nullable: true},
		{Name: "born", DataType: odbc.TypeDate, Nullable: false},
	}

	buffers := []bridge.ColumnBuffer{
		bridge.Int32Column{1, 2, 3},
		bridge.TextColumn{[]byte("alice"), nil, []byte("carol")},
		bridge.NullableFloat64Column{
			Values:     []float64{98.5, 0, 73.25},
			Indicators: []odbc.Indicator{8, odbc.NullData, 8},
		},
		bridge.DateColumn{
			{Year: 1990, Month: 4, Day: 12},
			{Year: 1985, Month: 11, Day: 3},
			{Year: 2001, Month: 2, Day: 28},
		},
	}

	names := make([]string, 0, len(descriptors))
	columns := make([][]bridge.Cell, 0, len(descriptors))

	for i, descriptor := range descriptors {
		layout, err := bridge.ResolveLayout(descriptor)
		if err != nil {
			return fmt.Errorf("resolve layout: %w", err)
		}

		columnLogger := common.AnnotateLoggerWithColumn(logger, descriptor.Name)
		columnLogger.Debug("materialize column",
			zap.Stringer("kind", layout.Kind),
			zap.Bool("nullable", layout.Nullable),
			zap.Int("rows", buffers[i].Rows()),
		)

		cells, err := bridge.Materialize(buffers[i])
		if err != nil {
			return fmt.Errorf("materialize column '%s': %w", descriptor.Name, err)
		}

		names = append(names, descriptor.Name)
		columns = append(columns, cells)
	}

	opts := render.Options{NullLiteral: renderCfg.NullLiteral}

	if err := render.TableWithOptions(w, names, columns, opts); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	return nil
}
