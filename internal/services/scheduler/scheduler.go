// Package services содержит планировщик поиска истекающих членств
// и публикации уведомлений о них в брокер.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/ayoubmdl/membership-backoffice/internal/lib/sl"
	"github.com/ayoubmdl/membership-backoffice/internal/models"
	"github.com/ayoubmdl/membership-backoffice/internal/rabbitmq"
)

// MembershipRepository определяет запросы планировщика к хранилищу.
type MembershipRepository interface {
	FindMembershipsExpiringTomorrow(ctx context.Context) ([]*models.ExpiringInfo, error)
}

// SchedulerService периодически ищет истекающие членства и публикует
// сообщения для рассылки уведомлений.
type SchedulerService struct {
	repo MembershipRepository
	log  *slog.Logger
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo MembershipRepository, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo: repo,
		log:  log,
	}
}

// FindExpiringMembershipsDueTomorrow запускает периодический поиск членств,
// истекающих завтра. Первый проход выполняется сразу, далее раз в 12 часов.
func (s *SchedulerService) FindExpiringMembershipsDueTomorrow(ctx context.Context, channel *amqp.Channel) {
	s.runFindExpiringMembershipsDueTomorrow(ctx, channel)

	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runFindExpiringMembershipsDueTomorrow(ctx, channel)
		case <-ctx.Done():
			return
		}
	}
}

func (s *SchedulerService) runFindExpiringMembershipsDueTomorrow(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("starting service to find expiring memberships due tomorrow")
	expiring, err := s.repo.FindMembershipsExpiringTomorrow(ctx)
	if err != nil {
		s.log.Error("failed to find expiring memberships", sl.Err(err))
		return
	}
	if len(expiring) == 0 {
		s.log.Info("no expiring memberships found")
		return
	}
	s.log.Info("found expiring memberships", "count", len(expiring))
	for _, info := range expiring {
		err = rabbitmq.PublishMessage(channel, rabbitmq.NotificationsExchange, rabbitmq.ExpiringRoutingKey, info)
		if err != nil {
			s.log.Error("failed to publish message", sl.Err(err))
		}
	}
}
