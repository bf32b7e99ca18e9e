package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rendau/txtlocal/adapters/client/httpc"
	"github.com/rendau/txtlocal/adapters/client/httpc/httpclient"
	"github.com/rendau/txtlocal/adapters/logger/zap"
	"github.com/rendau/txtlocal/adapters/sms"
	"github.com/rendau/txtlocal/adapters/sms/mock"
	"github.com/rendau/txtlocal/adapters/sms/txtlocal"
	"github.com/rendau/txtlocal/errs"
	"github.com/rendau/txtlocal/tools"
	"github.com/spf13/cobra"
)

const userAgent = "txtlocal-cli"

type sendArgsSt struct {
	message string
	numbers []string
	params  map[string]string
	test    bool
	dryRun  bool
}

func newSendCmd(cfgPath *string) *cobra.Command {
	args := &sendArgsSt{}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message to one or more numbers",
		Example: `  txtlocal send -m "Hello" -n 447000000000,447000000001 --sender "Jims Autos"
  txtlocal send -m "Hello" -n 447000000000 --param schedule_time=1700000000 --test`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConf(*cfgPath, cmd.Flags())
			if err != nil {
				return err
			}

			return runSend(cmd, conf, args)
		},
	}

	cmd.Flags().StringVarP(&args.message, "message", "m", "", "message body")
	cmd.Flags().StringSliceVarP(&args.numbers, "numbers", "n", nil, "recipient numbers in international format")
	cmd.Flags().StringToStringVar(&args.params, "param", nil, "extra provider field, repeatable: --param key=value")
	cmd.Flags().BoolVar(&args.test, "test", false, "ask the provider to validate without sending")
	cmd.Flags().BoolVar(&args.dryRun, "dry-run", false, "do not call the provider")
	cmd.Flags().String("sender", "", "default sender name")
	cmd.Flags().String("format", "", "provider response format: json or xml")

	_ = cmd.MarkFlagRequired("message")
	_ = cmd.MarkFlagRequired("numbers")

	return cmd
}

func runSend(cmd *cobra.Command, conf *confSt, args *sendArgsSt) error {
	lg := zap.New(conf.LogLevel, conf.Debug)
	defer lg.Sync()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	stopCh, stopSignal := tools.StopSignal()
	defer stopSignal()

	go func() {
		select {
		case <-stopCh:
			lg.Warnw("Interrupted, cancelling request")
			cancel()
		case <-ctx.Done():
		}
	}()

	var sender sms.Sms

	if args.dryRun {
		sender = mock.New(lg, false)
	} else {
		hc := httpclient.New(lg, httpc.OptionsSt{
			Client:      &http.Client{Timeout: conf.Timeout},
			BaseUrl:     conf.ApiUrl,
			BaseHeaders: http.Header{"User-Agent": {userAgent}},
			LogFlags:    logFlags(conf),
		})

		client, err := txtlocal.New(lg, hc, &conf.CredsSt)
		if err != nil {
			return err
		}

		if conf.Format != "" {
			if err = client.SetFormat(conf.Format); err != nil {
				return err
			}
		}

		sender = client.SetSender(conf.Sender)
	}

	numbers := make([]string, 0, len(args.numbers))
	for _, n := range args.numbers {
		numbers = append(numbers, tools.NormalizePhone(n))
	}

	params := url.Values{}
	for k, v := range args.params {
		params.Set(k, v)
	}
	if args.test {
		params.Set("test", "true")
	}

	rep, err := sender.SendMessage(ctx, args.message, numbers, params)
	if rep != nil {
		if wErr := writeRep(cmd, rep); wErr != nil {
			return wErr
		}
	}
	if err != nil {
		if errors.Is(err, errs.FailResponse) {
			return fmt.Errorf("provider rejected the message: %w", err)
		}
		return fmt.Errorf("send: %w", err)
	}

	return nil
}

func logFlags(conf *confSt) int {
	// request bodies carry credentials
	if conf.Debug || conf.LogLevel == "debug" {
		return httpc.LogResponse
	}

	return 0
}

func writeRep(cmd *cobra.Command, rep *sms.RepSt) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}

	return nil
}
