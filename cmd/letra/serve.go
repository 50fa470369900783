package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/letra/internal/config"
	"github.com/vovakirdan/letra/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the letra SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the menu. All sessions share
the server's database, so there is one daily result per date for the whole
server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses serve.host_key from the config (~/.letra/ssh_host_ed25519),
    generating it on first start

Examples:
  letra serve                           # Listen on :23235
  letra serve --ssh :2222               # Listen on port 2222
  letra serve --host-key ./my_host_key  # Use specific host key
  letra serve --db ./letra.db           # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

func applyServeFlags(cfg *config.Config) error {
	if flagSSHAddr != "" {
		cfg.Serve.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Serve.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Serve.IdleTimeout = flagIdleTimeout
	}
	return nil
}

func runServe(_ *cobra.Command, _ []string) {
	a := mustOpenApp(applyServeFlags)
	defer a.Close()

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = a.cfg.Serve.Address
	sshCfg.HostKeyPath = config.ExpandHome(a.cfg.Serve.HostKey)
	sshCfg.IdleTimeout = a.cfg.IdleTimeout()

	// Session logs are the server's output; keep them visible under the
	// default warn level.
	logger := a.logger.WithPrefix("letra-ssh")
	if logger.GetLevel() > log.InfoLevel {
		logger.SetLevel(log.InfoLevel)
	}

	server, err := tui.NewSSHServer(sshCfg, a.svc, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		a.Close()
		os.Exit(1)
	}

	fmt.Printf("Starting letra SSH server on %s\n", sshCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		a.Close()
		os.Exit(1)
	}
}
