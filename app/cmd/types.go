package cmd

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zidaye/odbc-bridge/app/bridge"
)

var TypesCmd = &cobra.Command{
	Use:   "types",
	Short: "Dump the supported SQL data type to buffer layout mapping",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return dumpTypeMapping(cmd.OutOrStdout())
	},
}

func dumpTypeMapping(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "SQL TYPE\tTAG\tBUFFER KIND\tELEMENT SIZE"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, dataType := range bridge.SupportedTypes() {
		layout, err := bridge.ResolveLayout(bridge.ColumnDescriptor{DataType: dataType})
		if err != nil {
			return fmt.Errorf("resolve layout: %w", err)
		}

		size := "variable"
		if n := layout.Kind.ElementSize(); n != 0 {
			size = strconv.Itoa(n)
		}

		if _, err := fmt.Fprintf(tw, "%v\t%d\t%v\t%s\n",
			dataType, int16(dataType), layout.Kind, size); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}

	return nil
}
