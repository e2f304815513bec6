// =============================================================================
// Purchase Report Engine - Main Entry Point
// =============================================================================
//
// CLI entry point for the purchase report engine. It initializes the Cobra
// CLI framework and delegates command execution to the cmd package.
//
// USAGE:
//   purchase-report process  - Generate the flat report and summaries
//   purchase-report analyze  - Generate the hierarchical per-file rollup
//   purchase-report mapping  - Show the effective category mapping
//   purchase-report version  - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : engine and pipeline packages (not for external import)
//   - pkg/       : shared utilities
//
// =============================================================================

package main

import "purchasereport/cmd"

func main() {
	cmd.Execute()
}
