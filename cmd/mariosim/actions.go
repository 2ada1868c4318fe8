package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkarpov/mariosim/internal/sim"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the joypad actions per control scheme",
	Long:  `Shows the joypad action list of every control scheme, with the key that sends each action during a session.`,
	Run:   runActions,
}

func runActions(cmd *cobra.Command, args []string) {
	keys := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="}

	for _, scheme := range sim.Schemes() {
		fmt.Println(scheme.Title())
		fmt.Println()

		for i, action := range sim.Actions(scheme) {
			key := "?"
			if i < len(keys) {
				key = keys[i]
			}
			fmt.Printf("  %s  %s\n", key, action)
		}
		fmt.Println()
	}

	fmt.Println("Run 'mariosim play --scheme <name>' to use a scheme.")
}
