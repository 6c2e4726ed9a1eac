package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cartroute/entry"
	"github.com/katalvlaran/cartroute/storage"
)

type entriesFlags struct {
	db       string
	inMemory bool
	demo     bool
}

func newEntriesCmd(a *app) *cobra.Command {
	f := &entriesFlags{}
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List delivery outcome records and derived priorities",
		Long: `Opens the entry device (a BadgerDB directory, or storage.path from the
config) and lists its outcome records with the per-location priorities the
planner would use.

Examples:
  cartroute entries --db /var/lib/cartroute/eeprom
  cartroute entries --in-memory --demo`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEntries(cmd, a, f)
		},
	}
	cmd.Flags().StringVar(&f.db, "db", "", "device directory (default: storage.path)")
	cmd.Flags().BoolVar(&f.inMemory, "in-memory", false, "use a throwaway in-memory device")
	cmd.Flags().BoolVar(&f.demo, "demo", false, "write sample records first")

	return cmd
}

func runEntries(cmd *cobra.Command, a *app, f *entriesFlags) error {
	scfg := storage.InMemoryConfig()
	if !f.inMemory {
		path := f.db
		if path == "" && a.configPath != "" {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			path = cfg.Storage.Path
		}
		scfg = storage.DefaultConfig(path)
	}
	scfg.Logger = a.logger

	dev, err := storage.Open(scfg)
	if err != nil {
		return err
	}
	defer dev.Close()

	mgr, err := entry.NewManager(dev, a.logger)
	if err != nil {
		return err
	}
	if f.demo {
		if err = writeDemo(mgr); err != nil {
			return err
		}
	}

	posts, err := mgr.Posts()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, postsTable(posts))

	prio, err := mgr.Priorities()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %v\n", styles.Title.Render("pending priorities:"), prio)

	return nil
}

// postsTable renders outcome records; the status column is left-aligned.
func postsTable(posts []entry.PostEntry) string {
	const statusCol = 5
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Muted).
		Headers("#", "DICT", "PRIO", "EID", "OID", "STATUS", "SINCE").
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return styles.Header.Padding(0, 1)
			case col == statusCol:
				return s
			default:
				return s.Align(lipgloss.Right)
			}
		})
	for i, p := range posts {
		t.Row(
			strconv.Itoa(i),
			strconv.Itoa(int(p.Dict)),
			strconv.Itoa(int(p.Prio)),
			strconv.Itoa(int(p.EID)),
			strconv.Itoa(int(p.OID)),
			p.Status.String(),
			strconv.FormatUint(uint64(p.Since), 10),
		)
	}

	return t.Render()
}

// writeDemo records a handful of outcomes against the campus locations.
func writeDemo(mgr *entry.Manager) error {
	samples := []struct {
		dict   uint8
		ttd    uint16
		flags  uint8
		desc   string
		status entry.Status
	}{
		{2, 0xC000, 0x03, "Veranda: chamomile and honey, keep warm", entry.Postponed},
		{6, 0x4000, 0x01, "C024: lab samples", entry.OK},
		{7, 0xFFFF, 0x05, "Atrium kiosk restock", entry.Timeout},
		{9, 0x2000, 0x02, "F012: allergen, no lavender", entry.Absent},
	}
	for i, s := range samples {
		pre, err := entry.NewPreEntry(s.dict, s.ttd, s.flags, s.desc)
		if err != nil {
			return err
		}
		if _, err = mgr.WritePre(pre); err != nil {
			return err
		}
		if _, err = mgr.Record(pre, uint8(i+1), 1, s.status); err != nil {
			return err
		}
	}

	return nil
}
