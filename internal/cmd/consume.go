package cmd

import (
	"github.com/spf13/cobra"
	"github.com/utakatalp/football-statistics/internal/log"
	"github.com/utakatalp/football-statistics/internal/source"
)

func consumeCmd() *cobra.Command {
	var (
		topic   string
		brokers []string
	)

	command := &cobra.Command{
		Use:   "consume",
		Short: "Process messages from a Kafka topic partition and print the reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, errApp := newApp(ctx, cmd.OutOrStdout())
			if errApp != nil {
				return errApp
			}
			defer app.Close()

			conf := app.conf.Kafka
			if topic != "" {
				conf.Topic = topic
			}
			if len(brokers) > 0 {
				conf.Brokers = brokers
			}

			kafka, errKafka := source.DialKafka(conf)
			if errKafka != nil {
				return errKafka
			}
			defer log.Closer(kafka)

			return ignoreCancel(app.proc.Run(ctx, kafka))
		},
	}

	command.Flags().StringVarP(&topic, "topic", "t", "", "topic to consume (default from config kafka.topic)")
	command.Flags().StringSliceVarP(&brokers, "brokers", "b", nil, "broker addresses (default from config kafka.brokers)")

	return command
}
