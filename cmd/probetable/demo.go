package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const demoCapacity = 7

type check struct {
	pass string
	fail string
	ok   bool
}

func newDemoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Fill a small table, delete from it and check the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), opts)
		},
	}
}

func runDemo(w io.Writer, opts *rootOptions) error {
	m, flush, err := opts.newMap(demoCapacity)
	if err != nil {
		return err
	}
	defer flush()

	for _, e := range []struct {
		key   int
		value string
	}{{6, "cat"}, {11, "dog"}, {21, "bird"}, {27, "horse"}} {
		if err := m.Set(e.key, e.value); err != nil {
			return errors.Wrapf(err, "set %d", e.key)
		}
	}

	keys, values := formatLayout(m.Slots())
	section(w, "keys and values")
	fmt.Fprintln(w, keys)
	fmt.Fprintln(w, values)
	fmt.Fprintln(w, m.Len())
	fmt.Fprintln(w, m.Capacity())

	var failed int
	report := func(title string, c check) {
		section(w, title)
		if c.ok {
			fmt.Fprintf(w, "    + %s\n", c.pass)
			return
		}

		fmt.Fprintf(w, "    - %s\n", c.fail)
		failed++
	}

	report("data check", check{
		pass: "all items were set correctly",
		fail: "items were NOT set correctly",
		ok:   values == "[bird horse _ _ dog _ cat]",
	})
	report("has", check{
		pass: "Has finds 27",
		fail: "Has does NOT find 27",
		ok:   m.Has(27),
	})

	m.Delete(11)

	report("len", check{
		pass: "Len is 3 after deleting 11",
		fail: "Len is NOT 3 after deleting 11",
		ok:   m.Len() == 3,
	})
	report("has after deletion", check{
		pass: "Has no longer finds 11",
		fail: "Has OR Delete NOT working",
		ok:   !m.Has(11),
	})

	_, values = formatLayout(m.Slots())
	report("data after deletion", check{
		pass: "data is correct after deletion",
		fail: "data was NOT removed correctly",
		ok:   values == "[bird horse _ _ _ _ cat]",
	})

	if failed > 0 {
		return errors.Errorf("%d demo checks failed", failed)
	}

	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "---------- %s ----------\n", title)
}
