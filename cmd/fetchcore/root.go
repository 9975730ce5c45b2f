package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tanq16/fetchcore/internal/core"
	"github.com/tanq16/fetchcore/internal/output"
	"github.com/tanq16/fetchcore/internal/transport"
)

var (
	chunkSize    int64
	parallel     int
	maxRetries   int
	retryDelay   time.Duration
	timeout      time.Duration
	keepAlive    time.Duration
	userAgent    string
	proxyURL     string
	proxyUser    string
	proxyPass    string
	headers      []string
	debug        bool
)

var fetchcoreVersion = "dev"

var rootCmd = &cobra.Command{
	Use:     "fetchcore [URL] [OUTPUT_PATH]",
	Short:   "fetchcore is a parallel HTTP file downloader",
	Version: fetchcoreVersion,
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		rawURL, outputPath := args[0], args[1]

		output.InitLogger(debug)
		log := output.GetLogger("cli")

		if _, err := url.Parse(rawURL); err != nil {
			output.PrintError("Invalid URL format")
			os.Exit(1)
		}

		if _, err := os.Stat(outputPath); err == nil {
			outputPath = output.RenewOutputPath(outputPath)
		}

		cfg, err := core.NewDownloadConfig(chunkSize, parallel, maxRetries, retryDelay)
		if err != nil {
			output.PrintError(fmt.Sprintf("Invalid configuration: %v", err))
			os.Exit(1)
		}

		client, err := transport.New(transport.Config{
			Timeout:        timeout,
			KeepAlive:      keepAlive,
			ProxyURL:       proxyURL,
			ProxyUsername:  proxyUser,
			ProxyPassword:  proxyPass,
			UserAgent:      userAgent,
			Headers:        parseHeaderArgs(headers),
			HighThreadMode: parallel > 8,
		})
		if err != nil {
			output.PrintError(fmt.Sprintf("Failed to build HTTP client: %v", err))
			os.Exit(1)
		}
		defer client.Close()

		listener := output.NewConsoleProgressListener(outputPath)
		downloader := core.NewDownloader(client, cfg, listener)

		log.Debug().Str("url", rawURL).Str("output", outputPath).Msg("starting download")
		if err := downloader.Download(context.Background(), rawURL, outputPath); err != nil {
			fmt.Println()
			output.PrintError(fmt.Sprintf("Download failed: %v", err))
			os.Exit(1)
		}
		output.PrintSuccess("Download complete: " + outputPath)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseHeaderArgs(raw []string) map[string]string {
	headers := make(map[string]string, len(raw))
	for _, h := range raw {
		parts := strings.SplitN(h, ":", 2)
		if len(parts) != 2 {
			continue
		}
		headers[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return headers
}

func init() {
	defaults := core.DefaultDownloadConfig()

	rootCmd.Flags().Int64Var(&chunkSize, "chunk-size", defaults.ChunkSize, "Chunk size in bytes for range requests")
	rootCmd.Flags().IntVarP(&parallel, "parallel", "c", defaults.MaxParallelDownloads, "Number of concurrent range requests (above 8 enables high-thread-mode)")
	rootCmd.Flags().IntVar(&maxRetries, "max-retries", defaults.MaxRetries, "Maximum retry attempts per chunk")
	rootCmd.Flags().DurationVar(&retryDelay, "retry-delay", defaults.RetryDelay, "Base retry backoff delay (eg. 500ms, 2s)")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", 60*time.Second, "Connection timeout")
	rootCmd.Flags().DurationVarP(&keepAlive, "keep-alive-timeout", "k", 60*time.Second, "Keep-alive timeout for the HTTP client")
	rootCmd.Flags().StringVarP(&userAgent, "user-agent", "a", "", "User agent to send")
	rootCmd.Flags().StringVarP(&proxyURL, "proxy", "p", "", "HTTP/HTTPS proxy URL")
	rootCmd.Flags().StringVar(&proxyUser, "proxy-username", "", "Proxy username (if not provided in proxy URL)")
	rootCmd.Flags().StringVar(&proxyPass, "proxy-password", "", "Proxy password (if not provided in proxy URL)")
	rootCmd.Flags().StringArrayVarP(&headers, "header", "H", []string{}, "Custom headers (like 'Authorization: Basic dXNlcjpwYXNz'); can be specified multiple times")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
