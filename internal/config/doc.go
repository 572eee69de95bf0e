// Package config provides configuration management for stats-gate.
//
// Configuration is loaded from environment variables first and then overridden
// by command line flags of the form --key=value. The result is validated before
// any report is read.
//
// Example usage:
//
//	cfg, err := config.Load(os.Args[1:])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg)
package config
