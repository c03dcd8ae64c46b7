package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/homier/probetable"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var capacity int

	cmd := &cobra.Command{
		Use:   "run <op>...",
		Short: "Apply operations to a fresh table",
		Long: "Apply operations to a fresh table\n" +
			"\n" +
			"Operations run in order against a single table:\n" +
			"\n" +
			"    set:K=V   insert or update key K\n" +
			"    get:K     print the value of K\n" +
			"    del:K     delete K\n" +
			"    has:K     report whether any slot holds K\n" +
			"    len       print the number of occupied slots\n" +
			"    cap       print the capacity\n" +
			"    dump      print the keys and values in slot order\n" +
			"    stats     print occupancy statistics",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, flush, err := opts.newMap(capacity)
			if err != nil {
				return err
			}
			defer flush()

			for _, op := range args {
				if err := applyOp(cmd.OutOrStdout(), m, op); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(
		&capacity, "capacity", "c", 7,
		"Initial capacity of the table")

	return cmd
}

func applyOp(w io.Writer, m *probetable.Map[string], op string) error {
	name, arg, _ := strings.Cut(op, ":")

	switch name {
	case "set":
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return errors.Errorf("op %q: expected set:K=V", op)
		}

		key, err := parseKey(op, k)
		if err != nil {
			return err
		}

		if err := m.Set(key, v); err != nil {
			return errors.Wrapf(err, "op %q", op)
		}

		fmt.Fprintf(w, "set %d=%s\n", key, v)
	case "get":
		key, err := parseKey(op, arg)
		if err != nil {
			return err
		}

		if v, ok := m.Get(key); ok {
			fmt.Fprintf(w, "get %d: %s\n", key, v)
		} else {
			fmt.Fprintf(w, "get %d: not found\n", key)
		}
	case "del":
		key, err := parseKey(op, arg)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "del %d: %t\n", key, m.Delete(key))
	case "has":
		key, err := parseKey(op, arg)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "has %d: %t\n", key, m.Has(key))
	case "len":
		fmt.Fprintf(w, "len: %d\n", m.Len())
	case "cap":
		fmt.Fprintf(w, "cap: %d\n", m.Capacity())
	case "dump":
		keys, values := formatLayout(m.Slots())
		fmt.Fprintln(w, keys)
		fmt.Fprintln(w, values)
	case "stats":
		s := m.Stats()
		fmt.Fprintf(w, "size=%d capacity=%d free=%d resizes=%d max_probe=%d load=%.2f\n",
			s.Size, s.Capacity, s.Free, s.Resizes, s.MaxProbeDistance, s.LoadFactor)
	default:
		return errors.Errorf("unknown op %q", op)
	}

	return nil
}

func parseKey(op, s string) (int, error) {
	key, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "op %q: invalid key", op)
	}

	return key, nil
}
