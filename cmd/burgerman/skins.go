package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/burgerman/internal/games/burger"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List the skin catalog",
	Long: `List every skin in unlock order with its colors and price.

Skins are bought in order in the shop between rounds. Each purchase makes
the next one more expensive.

Examples:
  burgerman skins
  burgerman skins --config ./my-burger.yaml`,
	Args: cobra.NoArgs,
	Run:  runSkins,
}

func runSkins(_ *cobra.Command, _ []string) {
	shop := gameConfig.Shop
	skins := burger.GenerateSkins(shop.SkinCount)

	fmt.Printf("Skins - %d in catalog\n\n", len(skins))
	for _, sk := range skins {
		price := "owned"
		if sk.ID > 0 {
			// The n-th purchase happens with n skins owned
			price = fmt.Sprintf("%d", shop.BaseCost+shop.CostStep*sk.ID)
		}
		fmt.Printf("  %3d  %s  %-10s  %s\n", sk.ID, swatch(sk.Colors), sk.Name, price)
	}
}

// swatch paints one block per burger part.
func swatch(c burger.SkinColors) string {
	var out string
	for _, part := range []string{string(c.Bun), string(c.Lettuce), string(c.Cheese), string(c.Patty), string(c.Seeds)} {
		out += lipgloss.NewStyle().Foreground(lipgloss.Color(part)).Render("██")
	}
	return out
}
