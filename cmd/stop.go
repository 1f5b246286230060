package cmd

// RunStop tears the access point down.
func RunStop(configFile string, dryRun bool) error {
	c, cfg, err := buildController(configFile, dryRun)
	if err != nil {
		return err
	}

	rep, err := c.Stop()
	reportIgnored(rep)
	if err != nil {
		return err
	}

	if dryRun {
		Printer.Println("Dry run complete. No changes were applied.")
		return nil
	}
	Printer.Printf("Access point down. Bridge %s removed.\n", cfg.BridgeName)
	return nil
}
