package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"energy-scheduler/api"
	"energy-scheduler/config"
	"energy-scheduler/internal/core"
	"energy-scheduler/internal/schedulers"
)

func main() {
	root := &cobra.Command{
		Use:   "energy-scheduler",
		Short: "Energy-efficient CPU scheduling simulator",
		Long: `Simulates classic CPU scheduling algorithms (FCFS, SJF, Priority,
Round Robin) and a proposed energy-efficient Round Robin variant that
scales CPU frequency with ready-queue load. Reports waiting, turnaround
and response times, CPU utilization and total energy per run.`,
	}
	root.AddCommand(serveCmd(), demoCmd())

	if err := root.Execute(); err != nil {
		log.Fatalln(err)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling simulator HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetSchedulerConfig()

			app := fiber.New()
			api.RegisterRoutes(app, api.NewSchedulerHandlerImpl(cfg))

			return app.Listen(fmt.Sprintf(":%d", cfg.Port))
		},
	}
}

func demoCmd() *cobra.Command {
	var quantum int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the sample workload through every algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			processes := []core.Process{
				{Id: "P1", ArrivalTime: 0, BurstTime: 7, Priority: 2},
				{Id: "P2", ArrivalTime: 2, BurstTime: 4, Priority: 1},
				{Id: "P3", ArrivalTime: 4, BurstTime: 1, Priority: 3},
				{Id: "P4", ArrivalTime: 5, BurstTime: 4, Priority: 2},
			}

			results, err := schedulers.ScheduleAll(processes, quantum)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ALGORITHM\tAVG WAIT\tAVG TURNAROUND\tAVG RESPONSE\tCPU UTIL\tENERGY")
			for _, res := range results {
				fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f%%\t%.2f\n",
					res.Algorithm,
					res.AverageWaitingTime,
					res.AverageTurnAroundTime,
					res.AverageResponseTime,
					res.CpuUtilization,
					res.TotalEnergy,
				)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 2, "time quantum for round-robin based algorithms")
	return cmd
}
