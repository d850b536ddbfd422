package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/obairak/contact-assistant/internal/command"
	"github.com/obairak/contact-assistant/internal/config"
	"github.com/obairak/contact-assistant/internal/contacts"
)

var (
	debugMode bool

	// logCloser is the open log file, closed after the command returns.
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:     config.AppCommand,
	Short:   config.AppShort,
	Long:    config.AppLong,
	Version: config.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Configure structured logging early to capture startup issues.
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		logCloser = setupLogging(settings, debugMode)
		logStartupInfo()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssistant(cmd.Context())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, config.FlagDebug, false, config.FlagDescDebug)
}

// main delegates to runMain so that deferred function calls (like closing
// the log file) run before the process terminates. os.Exit() does not run
// defers, so we must return an integer code first.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle and exit codes.
// Returns config.ExitCodeSuccess on success, config.ExitCodeError on failure.
func runMain() int {
	// Create a root context that cancels on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	defer func() {
		if logCloser != nil {
			_ = logCloser.Close() // Best effort close
		}
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// runAssistant owns the interactive loop: greet, prompt, execute, reply.
// Lines are read on a separate goroutine so the loop can also react to
// context cancellation.
func runAssistant(ctx context.Context) error {
	book := contacts.NewAddressBook()
	assistant := command.NewAssistant(book, command.RealClock{})

	fmt.Println(config.MsgWelcome)

	lines := make(chan string, config.ChannelBufferSize)
	scanDone := make(chan error, config.ChannelBufferSize)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanDone <- scanner.Err()
	}()

	for {
		fmt.Print(config.Prompt)
		select {
		case <-ctx.Done():
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
			fmt.Println()
			fmt.Println(config.MsgGoodbye)
			return nil
		case err := <-scanDone:
			// Input ended: EOF leaves err nil, read failures surface.
			fmt.Println(config.MsgGoodbye)
			return err
		case line := <-lines:
			reply, quit := assistant.Execute(line)
			if reply != "" {
				fmt.Println(reply)
			}
			if quit {
				return nil
			}
		}
	}
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger. Logs go to a file so
// they never interleave with the conversation on stdout; --debug adds a
// stderr handler on top.
func setupLogging(settings *config.Settings, debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	logPath := settings.LogFile
	if logPath == "" {
		if p, err := defaultLogPath(); err == nil {
			logPath = p
		}
	}

	if logPath != "" {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	if debugMode {
		writers = append(writers, os.Stderr)
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	level := settings.Level()
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// defaultLogPath determines the platform-specific cache directory for logs.
func defaultLogPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
