package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	rootCmd   = &cobra.Command{
		Use:   "relayctl",
		Short: "Media relay CLI - inspect and probe the relay bot",
		Long:  `A command-line interface for the media relay bot's HTTP API.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Server URL")

	listCmd.Flags().Int("limit", 20, "Maximum number of records")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(probeCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check relay health",
	Run: func(cmd *cobra.Command, args []string) {
		body, status := httpGet("/health")
		if status != http.StatusOK {
			fmt.Fprintf(os.Stderr, "Unhealthy: %s\n", string(body))
			os.Exit(1)
		}
		fmt.Println("ok")
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent fetches",
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")

		body, status := httpGet(fmt.Sprintf("/api/v1/fetches?limit=%d", limit))
		if status != http.StatusOK {
			fmt.Fprintf(os.Stderr, "Error: %s\n", string(body))
			os.Exit(1)
		}

		var fetches []map[string]interface{}
		json.Unmarshal(body, &fetches)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tURL\tPLATFORM\tSTATUS\tKIND")
		for _, f := range fetches {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				truncate(str(f["id"]), 8),
				truncate(str(f["url"]), 48),
				str(f["platform"]),
				str(f["status"]),
				str(f["media_kind"]))
		}
		w.Flush()
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show fetch statistics",
	Run: func(cmd *cobra.Command, args []string) {
		body, status := httpGet("/api/v1/fetches/stats")
		if status != http.StatusOK {
			fmt.Fprintf(os.Stderr, "Error: %s\n", string(body))
			os.Exit(1)
		}

		var stats map[string]interface{}
		json.Unmarshal(body, &stats)

		fmt.Printf("Total:      %v\n", stats["total"])
		fmt.Printf("Processing: %v\n", stats["processing"])
		fmt.Printf("Completed:  %v\n", stats["completed"])
		fmt.Printf("Failed:     %v\n", stats["failed"])
	},
}

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one fetch record",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		body, status := httpGet("/api/v1/fetches/" + args[0])
		if status != http.StatusOK {
			fmt.Fprintf(os.Stderr, "Error: %s\n", string(body))
			os.Exit(1)
		}

		var out bytes.Buffer
		json.Indent(&out, body, "", "  ")
		fmt.Println(out.String())
	},
}

var probeCmd = &cobra.Command{
	Use:   "probe [url]",
	Short: "Fetch and classify a URL without delivering it anywhere",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		payload, _ := json.Marshal(map[string]string{"url": args[0]})

		resp, err := http.Post(serverURL+"/api/v1/probe", "application/json", bytes.NewBuffer(payload))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != http.StatusOK {
			fmt.Fprintf(os.Stderr, "Probe failed: %s\n", string(body))
			os.Exit(1)
		}

		var record map[string]interface{}
		json.Unmarshal(body, &record)
		fmt.Printf("Platform: %s\n", str(record["platform"]))
		fmt.Printf("Kind:     %s\n", str(record["media_kind"]))
		fmt.Printf("File:     %s\n", str(record["file_name"]))
	},
}

func httpGet(path string) ([]byte, int) {
	resp, err := http.Get(serverURL + path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return body, resp.StatusCode
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
