package main

import (
	"atelier/internal/admin"
	"atelier/internal/model"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	token   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "adminctl",
		Short: "Административные действия над заявками и заказами",
	}
	rootCmd.PersistentFlags().StringVar(&baseURL, "url", envOr("ATELIER_URL", "http://localhost:8081"), "Адрес сервиса")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("ADMIN_TOKEN"), "Токен администратора")

	rootCmd.AddCommand(quoteCmd())
	rootCmd.AddCommand(decideCmd(model.OutcomeApprove))
	rootCmd.AddCommand(decideCmd(model.OutcomeReject))
	rootCmd.AddCommand(simpleCmd("complete", "Отметить заявку выполненной", admin.ActionMarkComplete))
	rootCmd.AddCommand(reasonCmd("reject-commission", "Отклонить заявку", admin.ActionRejectCommission))
	rootCmd.AddCommand(simpleCmd("legacy-accept", "Принять заявку по старой схеме оплаты", admin.ActionLegacyAccept))
	rootCmd.AddCommand(shipCmd())
	rootCmd.AddCommand(simpleCmd("deliver", "Отметить заказ доставленным", admin.ActionDeliver))
	rootCmd.AddCommand(reasonCmd("cancel", "Отменить заказ и вернуть товар на склад", admin.ActionCancelOrder))
	rootCmd.AddCommand(verificationsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(cmd *cobra.Command, a admin.Action) error {
	if err := admin.NewClient(baseURL, token).Do(cmd.Context(), a); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: ok\n", a.Action, a.Target)
	return nil
}

func quoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote [target] [total] [advance]",
		Short: "Выставить итоговую сумму и аванс",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("сумма %q: %w", args[1], err)
			}
			advance, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("аванс %q: %w", args[2], err)
			}
			return run(cmd, admin.Action{Action: admin.ActionSendQuote, Target: args[0], FinalTotal: total, AdvanceAmount: advance})
		},
	}
}

func decideCmd(outcome model.Outcome) *cobra.Command {
	var entity, reason string
	cmd := &cobra.Command{
		Use:   string(outcome) + " [target] [advance|final]",
		Short: "Решение по подтверждению оплаты",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, admin.Action{
				Action:  admin.ActionDecidePayment,
				Target:  args[0],
				Entity:  model.EntityType(entity),
				Stage:   model.Stage(args[1]),
				Outcome: outcome,
				Reason:  reason,
			})
		},
	}
	cmd.Flags().StringVarP(&entity, "entity", "e", "", "commission или order, если target - внутренний id")
	if outcome == model.OutcomeReject {
		cmd.Flags().StringVarP(&reason, "reason", "r", "", "Причина отклонения")
	}
	return cmd
}

func simpleCmd(use, short string, action admin.ActionType) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [target]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, admin.Action{Action: action, Target: args[0]})
		},
	}
}

func reasonCmd(use, short string, action admin.ActionType) *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   use + " [target]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, admin.Action{Action: action, Target: args[0], Reason: reason})
		},
	}
	cmd.Flags().StringVarP(&reason, "reason", "r", "", "Причина")
	return cmd
}

func shipCmd() *cobra.Command {
	var courier, tracking string
	cmd := &cobra.Command{
		Use:   "ship [target]",
		Short: "Передать заказ курьеру",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, admin.Action{Action: admin.ActionShip, Target: args[0], CourierName: courier, CourierTracking: tracking})
		},
	}
	cmd.Flags().StringVar(&courier, "courier", "", "Курьерская служба")
	cmd.Flags().StringVar(&tracking, "tracking", "", "Трек-номер курьера")
	cmd.MarkFlagRequired("courier")
	cmd.MarkFlagRequired("tracking")
	return cmd
}

func verificationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verifications",
		Short: "Показать оплаты, ожидающие проверки",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := admin.NewClient(baseURL, token).PendingVerifications(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		},
	}
}
