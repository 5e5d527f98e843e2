package service

import (
	"context"

	"github.com/d60-Lab/viewtube/internal/repository"
	"github.com/d60-Lab/viewtube/pkg/errs"
)

// SubscriptionService 订阅关系（用户 ↔ 频道），与点赞同构的 toggle 语义
type SubscriptionService interface {
	Toggle(ctx context.Context, subscriberID, channelID string) (bool, error)
	ListSubscribers(ctx context.Context, channelID string, opts repository.ListOptions) (*repository.Page[repository.SubscriberRow], error)
	ListChannels(ctx context.Context, subscriberID string, opts repository.ListOptions) (*repository.Page[repository.ChannelRow], error)
}

type subscriptionService struct {
	subs  repository.SubscriptionRepository
	users repository.UserRepository
}

func NewSubscriptionService(subs repository.SubscriptionRepository, users repository.UserRepository) SubscriptionService {
	return &subscriptionService{subs: subs, users: users}
}

// Toggle 返回结束状态（true = 已订阅）
func (s *subscriptionService) Toggle(ctx context.Context, subscriberID, channelID string) (bool, error) {
	id, err := checkID("channel id", channelID)
	if err != nil {
		return false, err
	}
	if subscriberID == id {
		return false, errs.Validation("you cannot subscribe to your own channel")
	}

	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return false, errs.Storage(err)
	}
	if !ok {
		return false, errs.NotFound("channel")
	}

	present, err := s.subs.Exists(ctx, subscriberID, id)
	if err != nil {
		return false, errs.Storage(err)
	}
	if present {
		if _, err := s.subs.Delete(ctx, subscriberID, id); err != nil {
			return false, errs.Storage(err)
		}
		return false, nil
	}

	created, err := s.subs.Create(ctx, subscriberID, id)
	if err != nil {
		return false, errs.Storage(err)
	}
	if !created {
		// 唯一索引命中，并发 toggle 已建边，按删除处理
		if _, err := s.subs.Delete(ctx, subscriberID, id); err != nil {
			return false, errs.Storage(err)
		}
		return false, nil
	}
	return true, nil
}

func (s *subscriptionService) ListSubscribers(ctx context.Context, channelID string, opts repository.ListOptions) (*repository.Page[repository.SubscriberRow], error) {
	id, err := checkID("channel id", channelID)
	if err != nil {
		return nil, err
	}
	return s.subs.ListSubscribers(ctx, id, opts)
}

func (s *subscriptionService) ListChannels(ctx context.Context, subscriberID string, opts repository.ListOptions) (*repository.Page[repository.ChannelRow], error) {
	id, err := checkID("subscriber id", subscriberID)
	if err != nil {
		return nil, err
	}
	return s.subs.ListChannels(ctx, id, opts)
}
