package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xh-polaris/aiagent-core-api/biz/application/dto/core_api"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/cst"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/mapper/conversation"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/mapper/message"
	"github.com/xh-polaris/aiagent-core-api/pkg/errorx"
	"github.com/xh-polaris/aiagent-core-api/types/errno"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateConversation(t *testing.T) {
	uid := primitive.NewObjectID().Hex()
	ctx := authedCtx(t, uid)
	cid := primitive.NewObjectID()
	svc := &ConversationService{
		ConversationMapper: &convMapperStub{
			insert: func(ctx context.Context, gotUid, title string) (*conversation.Conversation, error) {
				assert.Equal(t, uid, gotUid)
				return &conversation.Conversation{ConversationId: cid, Title: title}, nil
			},
		},
	}
	resp, err := svc.CreateConversation(ctx, &core_api.CreateConversationReq{Title: "数学答疑"})
	require.NoError(t, err)
	assert.Equal(t, cid.Hex(), resp.ConversationId)
	assert.Equal(t, "数学答疑", resp.Title)
}

func TestListConversationDefaults(t *testing.T) {
	ctx := authedCtx(t, primitive.NewObjectID().Hex())
	now := time.Now()
	var gotLimit int64
	svc := &ConversationService{
		ConversationMapper: &convMapperStub{
			list: func(ctx context.Context, uid string, limit int64) ([]*conversation.Conversation, error) {
				gotLimit = limit
				return []*conversation.Conversation{
					{ConversationId: primitive.NewObjectID(), Title: "t1", CreateTime: now, UpdateTime: now},
				}, nil
			},
		},
	}
	resp, err := svc.ListConversation(ctx, &core_api.ListConversationReq{})
	require.NoError(t, err)
	assert.EqualValues(t, cst.DefaultConvLimit, gotLimit)
	require.Len(t, resp.Conversations, 1)
	assert.Equal(t, "t1", resp.Conversations[0].Title)
	assert.Equal(t, now.Unix(), resp.Conversations[0].CreateTime)
}

func TestListMessageCursor(t *testing.T) {
	ctx := authedCtx(t, primitive.NewObjectID().Hex())
	cid := primitive.NewObjectID()
	var gotLastId string
	var gotLimit int64
	svc := &ConversationService{
		ConversationMapper: &convMapperStub{
			findActive: func(ctx context.Context, uid, gotCid string) (*conversation.Conversation, error) {
				return &conversation.Conversation{ConversationId: cid}, nil
			},
		},
		MessageMapper: &msgMapperStub{
			listAfter: func(ctx context.Context, gotCid, lastId string, limit int64) ([]*message.Message, error) {
				gotLastId, gotLimit = lastId, limit
				return []*message.Message{
					message.NewUserMessage(cid, "问题"),
					message.NewAssistantMessage(cid, "回答"),
				}, nil
			},
		},
	}

	// lastId=0等价于从头开始
	resp, err := svc.ListMessage(ctx, &core_api.ListMessageReq{ConversationId: cid.Hex(), LastId: "0"})
	require.NoError(t, err)
	assert.Equal(t, "", gotLastId)
	assert.EqualValues(t, cst.DefaultMessageLimit, gotLimit)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, cst.User, resp.Messages[0].Role)
	assert.Equal(t, cst.Assistant, resp.Messages[1].Role)

	cursor := primitive.NewObjectID().Hex()
	_, err = svc.ListMessage(ctx, &core_api.ListMessageReq{ConversationId: cid.Hex(), LastId: cursor, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, cursor, gotLastId)
	assert.EqualValues(t, 10, gotLimit)
}

func TestListMessageForeignConversation(t *testing.T) {
	ctx := authedCtx(t, primitive.NewObjectID().Hex())
	svc := &ConversationService{
		ConversationMapper: &convMapperStub{
			findActive: func(ctx context.Context, uid, cid string) (*conversation.Conversation, error) {
				return nil, monc.ErrNotFound
			},
		},
	}
	_, err := svc.ListMessage(ctx, &core_api.ListMessageReq{ConversationId: primitive.NewObjectID().Hex()})
	var se errorx.StatusError
	require.ErrorAs(t, err, &se)
	assert.EqualValues(t, errno.ConversationNotFoundErrCode, se.Code())
}

func TestDeleteConversationIdempotent(t *testing.T) {
	ctx := authedCtx(t, primitive.NewObjectID().Hex())
	calls := 0
	svc := &ConversationService{
		ConversationMapper: &convMapperStub{
			softDelete: func(ctx context.Context, uid, cid string) error {
				calls++
				return nil
			},
		},
	}
	req := &core_api.DeleteConversationReq{ConversationId: primitive.NewObjectID().Hex()}
	// 重复删除同一对话, 两次都应成功
	for i := 0; i < 2; i++ {
		resp, err := svc.DeleteConversation(ctx, req)
		require.NoError(t, err)
		assert.True(t, resp.Success)
	}
	assert.Equal(t, 2, calls)
}

func TestConversationUnauthorized(t *testing.T) {
	svc := &ConversationService{}
	_, err := svc.ListConversation(context.Background(), &core_api.ListConversationReq{})
	var se errorx.StatusError
	require.ErrorAs(t, err, &se)
	assert.EqualValues(t, errno.UnAuthErrCode, se.Code())
}
