package cmd

import (
	"context"
	"fmt"
	"time"

	"woodcraft/internal/adapter/batch"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.temporal.io/sdk/client"
)

// temporalClient is what the batch commands use from a Temporal client.
type temporalClient interface {
	batch.WorkflowStarter
	Close()
}

var dialTemporal = func(hostPort, namespace string) (temporalClient, error) {
	return client.Dial(client.Options{HostPort: hostPort, Namespace: namespace})
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run design work through the Temporal worker",
}

var batchGenerateCmd = &cobra.Command{
	Use:   "generate [design_id...]",
	Short: "Generate the 3D model of stored designs",
	Long: `Start one generation workflow per design. The worker (cmd/worker) picks
them up, generates the model and marks each design generated.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hostPort := viper.GetString("temporal_host")
		namespace := viper.GetString("temporal_namespace")
		taskQueue := viper.GetString("task_queue")

		c, err := dialTemporal(hostPort, namespace)
		if err != nil {
			cmd.Printf("Unable to reach Temporal at %s: %v\n", hostPort, err)
			return err
		}
		defer c.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		failed := 0
		for _, designID := range args {
			run, err := batch.StartGeneration(ctx, c, taskQueue, designID)
			if err != nil {
				failed++
				cmd.Printf("%s: failed to start: %v\n", designID, err)
				continue
			}
			cmd.Printf("%s: started workflow %s (run %s)\n", designID, run.GetID(), run.GetRunID())
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d generations failed to start", failed, len(args))
		}
		return nil
	},
}

func init() {
	batchCmd.PersistentFlags().String("temporal-host", "localhost:7233", "Temporal frontend host:port")
	viper.BindPFlag("temporal_host", batchCmd.PersistentFlags().Lookup("temporal-host"))

	batchCmd.PersistentFlags().String("temporal-namespace", "default", "Temporal namespace")
	viper.BindPFlag("temporal_namespace", batchCmd.PersistentFlags().Lookup("temporal-namespace"))

	batchCmd.PersistentFlags().String("task-queue", "design-generation", "Task queue the worker polls")
	viper.BindPFlag("task_queue", batchCmd.PersistentFlags().Lookup("task-queue"))

	batchCmd.AddCommand(batchGenerateCmd)
	rootCmd.AddCommand(batchCmd)
}
