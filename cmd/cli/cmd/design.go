package cmd

import (
	"fmt"
	"time"

	"woodcraft/internal/adapter/http/dto/request"
	"woodcraft/internal/adapter/http/dto/response"
	"woodcraft/internal/domain/entities"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Quote designs and follow their 3D generation",
}

var designRequestCmd = &cobra.Command{
	Use:   "request",
	Short: "Quote a design and start its 3D model",
	Long:  `Send a design to /v1/initiate_task_id and print the estimated price, the production time and the generation task to follow.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		description, _ := flags.GetString("description")
		decoration, _ := flags.GetString("decoration-type")
		material, _ := flags.GetString("material")
		height, _ := flags.GetFloat64("height")
		width, _ := flags.GetFloat64("width")
		thickness, _ := flags.GetFloat64("thickness")

		client := NewDesignClient(viper.GetString("url"))
		quote, err := client.RequestDesign(request.DesignRequest{
			DesignDescription: description,
			DecorationType:    decoration,
			Material:          material,
			Height:            height,
			Width:             width,
			Thickness:         thickness,
		})
		if err != nil {
			cmd.Printf("Failed to request design: %v\n", err)
			return err
		}
		if !quote.Success {
			cmd.Printf("Design rejected: %s\n", quote.Message)
			return fmt.Errorf("design rejected: %s", quote.Message)
		}

		if quote.EstimatedPrice != nil {
			cmd.Printf("Estimated price:  %.2f\n", *quote.EstimatedPrice)
		}
		if quote.ComplexityScore != nil {
			cmd.Printf("Complexity score: %.2f\n", *quote.ComplexityScore)
		}
		cmd.Printf("Production time:  %s\n", quote.ProductionTime)
		cmd.Printf("Task ID:          %s\n", quote.TaskID)
		cmd.Println(quote.Message)
		return nil
	},
}

var designStatusCmd = &cobra.Command{
	Use:   "status [task_id]",
	Short: "Check a generation task",
	Long: `Check a 3D generation task once, or with --watch keep checking until the
model is ready, the task fails or --max-checks checks have been made.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID := args[0]
		flags := cmd.Flags()
		watch, _ := flags.GetBool("watch")
		interval, _ := flags.GetDuration("interval")
		maxChecks, _ := flags.GetInt("max-checks")
		if !watch {
			maxChecks = 1
		}

		client := NewDesignClient(viper.GetString("url"))
		status, err := client.WaitForTask(taskID, interval, maxChecks, func(check int, st *response.TaskStatusResponse) {
			if watch {
				cmd.Printf("[%d/%d] %s: %s\n", check, maxChecks, st.TaskStatus, st.Message)
			}
		})
		if err != nil {
			cmd.Printf("Failed to get task status: %v\n", err)
			return err
		}

		printTaskStatus(cmd, status)
		if status.TaskStatus == string(entities.TaskStateFailed) {
			return fmt.Errorf("task %s failed: %s", taskID, status.Message)
		}
		return nil
	},
}

func printTaskStatus(cmd *cobra.Command, st *response.TaskStatusResponse) {
	cmd.Printf("Task:    %s\n", st.TaskID)
	cmd.Printf("Status:  %s\n", st.TaskStatus)
	cmd.Printf("Message: %s\n", st.Message)
	if st.Data != nil && st.Data.ModelURL != "" {
		cmd.Printf("Model:   %s\n", st.Data.ModelURL)
	}
	if st.Data != nil && st.Data.ThumbnailURL != "" {
		cmd.Printf("Preview: %s\n", st.Data.ThumbnailURL)
	}
}

func init() {
	designRequestCmd.Flags().StringP("description", "d", "", "What should be carved or engraved")
	designRequestCmd.Flags().String("decoration-type", "", "Decoration type, e.g. wall art")
	designRequestCmd.Flags().StringP("material", "m", "", "Wood material")
	designRequestCmd.Flags().Float64("height", 0, "Height")
	designRequestCmd.Flags().Float64("width", 0, "Width")
	designRequestCmd.Flags().Float64("thickness", 0, "Thickness")
	designRequestCmd.MarkFlagRequired("description")
	designRequestCmd.MarkFlagRequired("material")

	designStatusCmd.Flags().BoolP("watch", "w", false, "Keep checking until the task finishes")
	designStatusCmd.Flags().Duration("interval", 5*time.Second, "Time between checks when watching")
	designStatusCmd.Flags().Int("max-checks", 60, "Give up after this many checks when watching")

	designCmd.AddCommand(designRequestCmd)
	designCmd.AddCommand(designStatusCmd)
	rootCmd.AddCommand(designCmd)
}
