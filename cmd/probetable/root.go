package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/homier/probetable"
)

type rootOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "probetable",
		Short: "Exercise a linear probing hash table over integer keys",
		Long: "Exercise a linear probing hash table over integer keys\n" +
			"\n" +
			"The table grows to capacity*2+5 whenever only two free slots are left,\n" +
			"and deleting a key clears its slot without leaving a tombstone.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(
		&opts.verbose, "verbose", "v", false,
		"Log table resizes to stderr")

	cmd.AddCommand(newDemoCmd(&opts))
	cmd.AddCommand(newRunCmd(&opts))

	return cmd
}

func (o *rootOptions) logger() (*zap.Logger, error) {
	if !o.verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}

// newMap returns a map logging to the configured logger, and a func that
// flushes the logger.
func (o *rootOptions) newMap(capacity int) (*probetable.Map[string], func(), error) {
	logger, err := o.logger()
	if err != nil {
		return nil, nil, err
	}

	m, err := probetable.New(capacity, probetable.WithLogger[string](logger))
	if err != nil {
		return nil, nil, err
	}

	return m, func() { _ = logger.Sync() }, nil
}

// formatLayout renders the keys and the values of the map in slot order,
// with _ for empty slots.
func formatLayout(slots []probetable.Slot[string]) (string, string) {
	keys := make([]string, len(slots))
	values := make([]string, len(slots))

	for i, s := range slots {
		if !s.Occupied {
			keys[i], values[i] = "_", "_"
			continue
		}

		keys[i] = strconv.Itoa(s.Key)
		values[i] = s.Value
	}

	return "[" + strings.Join(keys, " ") + "]", "[" + strings.Join(values, " ") + "]"
}
