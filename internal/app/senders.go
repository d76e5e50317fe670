package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/carealert-backend/internal/adapter/provider/fast2sms"
	"github.com/heartmarshall/carealert-backend/internal/adapter/provider/fcm"
	"github.com/heartmarshall/carealert-backend/internal/adapter/provider/smtp"
	"github.com/heartmarshall/carealert-backend/internal/adapter/provider/webpush"
	"github.com/heartmarshall/carealert-backend/internal/config"
	"github.com/heartmarshall/carealert-backend/internal/domain"
	"github.com/heartmarshall/carealert-backend/internal/service/notify"
)

type channelSenders struct {
	attempts *notify.Log
	resolver *notify.Resolver
	push     *notify.PushSender
	email    *notify.EmailSender
	sms      *notify.SMSSender
}

// newSenders builds one sender per channel. A channel without credentials
// still gets a sender; its sends are recorded as skipped or simulated.
func newSenders(ctx context.Context, cfg *config.Config, repos repositories, logger *slog.Logger) (*channelSenders, error) {
	log := notify.NewLog(logger, repos.notifications)

	// Interface values stay nil when a transport is not configured.
	var mailer notify.Mailer
	if cfg.SMTP.Enabled() {
		mailer = smtp.NewMailer(smtp.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			Timeout:  cfg.SMTP.Timeout,
		}, logger)
	} else {
		logger.Warn("smtp not configured: emails will be skipped")
	}

	var web notify.WebPushClient
	if cfg.Push.WebPushEnabled() {
		c, err := webpush.NewClient(cfg.Push.VAPIDPublicKey, cfg.Push.VAPIDPrivateKey, cfg.Push.VAPIDSubject, cfg.Push.TTL, logger)
		if err != nil {
			return nil, fmt.Errorf("web push client: %w", err)
		}
		web = c
	} else {
		logger.Warn("vapid keys not configured: web push disabled")
	}

	var fcmClient notify.FCMClient
	if cfg.Push.FCMEnabled() {
		c, err := fcm.NewClient(ctx, cfg.Push.FCMCredentialsFile, logger)
		if err != nil {
			return nil, fmt.Errorf("fcm client: %w", err)
		}
		fcmClient = c
	}

	smsClient := fast2sms.NewClient(cfg.SMS.APIKey, cfg.SMS.BaseURL, cfg.SMS.Timeout, logger)
	if smsClient.Simulated() {
		logger.Warn("sms api key not configured: sms runs in simulated mode")
	}

	return &channelSenders{
		attempts: log,
		resolver: notify.NewResolver(logger, repos.users, repos.contacts),
		push:     notify.NewPushSender(logger, repos.subscriptions, web, fcmClient, log),
		email:    notify.NewEmailSender(logger, mailer, log),
		sms:      notify.NewSMSSender(logger, smsClient, log),
	}, nil
}

func (s *channelSenders) byChannel() map[domain.Channel]notify.Sender {
	return map[domain.Channel]notify.Sender{
		domain.ChannelPush:  s.push,
		domain.ChannelEmail: s.email,
		domain.ChannelSMS:   s.sms,
	}
}

func (s *channelSenders) dispatcher(timeout time.Duration, logger *slog.Logger) *notify.Dispatcher {
	return notify.NewDispatcher(logger, timeout, s.attempts, s.byChannel())
}
