package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cartroute/display"
)

func newMatrixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Print the configured costs, directions and priorities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			m, err := cfg.Matrix()
			if err != nil {
				return err
			}

			names := cfg.Names()
			n := m.Size()
			var b strings.Builder
			head := []string{styles.Cell.Render("")}
			for j := 0; j < n; j++ {
				head = append(head, styles.Header.Inherit(styles.Cell).Render(fmt.Sprint(j)))
			}
			fmt.Fprintln(&b, lipgloss.JoinHorizontal(lipgloss.Top, head...))

			for i := 0; i < n; i++ {
				row := []string{styles.Header.Inherit(styles.Cell).Render(fmt.Sprint(i))}
				for j := 0; j < n; j++ {
					var cell string
					switch {
					case i == j:
						cell = styles.Title.Inherit(styles.Cell).Render(fmt.Sprintf("*%d", m.Priority(i)))
					case i < j:
						cell = styles.Cell.Render(fmt.Sprint(m.Cost(i, j)))
					default:
						cell = styles.Muted.Inherit(styles.Cell).Render(string(display.Rune(m.Direction(j, i))))
					}
					row = append(row, cell)
				}
				fmt.Fprintln(&b, lipgloss.JoinHorizontal(lipgloss.Top, row...)+"  "+names[i])
			}
			b.WriteString(styles.Muted.Render("upper: cost · lower: direction column→row · *: priority"))

			fmt.Fprintln(cmd.OutOrStdout(), styles.Box.Render(b.String()))
			return nil
		},
	}
}
