package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for the chat command.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Saffron-to-green gradient
	s1 := termenv.String("  ___       _           _ ").Foreground(p.Color("#fb923c"))
	s2 := termenv.String(" / __| __ _| |_  __ _  (_)").Foreground(p.Color("#fbbf24"))
	s3 := termenv.String(" \\__ \\/ _` | ' \\/ _` | | |").Foreground(p.Color("#facc15"))
	s4 := termenv.String(" |___/\\__,_|_||_\\__,_|_/ |").Foreground(p.Color("#a3e635"))
	s5 := termenv.String("                     |__/ ").Foreground(p.Color("#4ade80"))
	s6 := termenv.String("   ITR Filing Assistant " + version).Foreground(p.Color("#34d399"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
