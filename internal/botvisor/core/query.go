package core

import (
	"context"

	"github.com/ehsaniara/botvisor/internal/botvisor/supervisor"
	"github.com/ehsaniara/botvisor/pkg/errors"
)

// BotSummary is the listing view of one supervised bot.
type BotSummary struct {
	Name         string `json:"name"`
	PID          int    `json:"pid"`
	Status       string `json:"status"`
	RestartCount int    `json:"restart_count"`
}

// ListBots returns the supervised processes that follow the bot naming convention.
func (s *Service) ListBots(ctx context.Context) ([]BotSummary, error) {
	session, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	list, err := session.List(ctx)
	if err != nil {
		return nil, upstream("list bots", err)
	}

	bots := make([]BotSummary, 0, len(list))
	for _, p := range list {
		if !s.allocator.Owns(p.Name) {
			continue
		}
		bots = append(bots, BotSummary{
			Name:         p.Name,
			PID:          p.PID,
			Status:       string(p.Status),
			RestartCount: p.RestartCount,
		})
	}
	return bots, nil
}

// DescribeBot returns the supervisor record of one bot.
func (s *Service) DescribeBot(ctx context.Context, name string) (supervisor.ProcessInfo, error) {
	if name == "" {
		return supervisor.ProcessInfo{}, errors.Validation("describe", errors.ErrMissingName)
	}
	session, err := s.connect(ctx)
	if err != nil {
		return supervisor.ProcessInfo{}, err
	}
	defer session.Close()

	info, err := session.Describe(ctx, name)
	if err != nil {
		return supervisor.ProcessInfo{}, upstream("describe bot", err)
	}
	return info, nil
}

// Logs returns the latest captured output of a bot. Unknown bots fail with a not-found
// error before any log is read.
func (s *Service) Logs(ctx context.Context, name string, lines int) ([]string, error) {
	if name == "" {
		return nil, errors.Validation("logs", errors.ErrMissingName)
	}
	session, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	out, err := session.Tail(ctx, name, supervisor.NormalizeLines(lines))
	if err != nil {
		return nil, upstream("tail logs", err)
	}
	return out, nil
}

// StopBot stops a bot; its record stays listed with status stopped.
func (s *Service) StopBot(ctx context.Context, name string) (supervisor.ProcessInfo, error) {
	if name == "" {
		return supervisor.ProcessInfo{}, errors.Validation("stop", errors.ErrMissingName)
	}
	session, err := s.connect(ctx)
	if err != nil {
		return supervisor.ProcessInfo{}, err
	}
	defer session.Close()

	info, err := session.Stop(ctx, name)
	if err != nil {
		s.logger.Warn("failed to stop bot", "bot", name, "error", err)
		return supervisor.ProcessInfo{}, err
	}
	s.logger.Info("bot stopped", "bot", name)
	return info, nil
}

// RuntimeVersion reports the interpreter version bots run under.
func (s *Service) RuntimeVersion(ctx context.Context) (string, error) {
	version, err := s.prober.Version(ctx)
	if err != nil {
		return "", upstream("runtime version", err)
	}
	return version, nil
}
