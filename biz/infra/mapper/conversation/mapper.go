package conversation

import (
	"context"
	"time"

	"github.com/xh-polaris/aiagent-core-api/biz/infra/config"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/cst"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/util"
	"github.com/xh-polaris/aiagent-core-api/pkg/errorx"
	"github.com/xh-polaris/aiagent-core-api/pkg/logs"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var _ MongoMapper = (*mongoMapper)(nil)

const (
	collection     = "conversation"
	cacheKeyPrefix = "cache:conversation:"
)

type MongoMapper interface {
	Insert(ctx context.Context, uid, title string) (c *Conversation, err error)
	FindActive(ctx context.Context, uid, cid string) (c *Conversation, err error)
	List(ctx context.Context, uid string, limit int64) (cs []*Conversation, err error)
	SoftDelete(ctx context.Context, uid, cid string) (err error)
	Touch(ctx context.Context, cid string) (err error)
}

type mongoMapper struct {
	conn *monc.Model
}

func NewConversationMongoMapper(config *config.Config) MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, collection, config.Cache)
	return &mongoMapper{conn: conn}
}

// Insert 创建一个新对话, title非空时截断到40字符后落库
func (m *mongoMapper) Insert(ctx context.Context, uid, title string) (c *Conversation, err error) {
	oid, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		logs.Errorf("[mapper] [conversation] [Insert] from hex err:%s", errorx.ErrorWithoutStack(err))
		return nil, err
	}

	now := time.Now()
	c = &Conversation{
		ConversationId: primitive.NewObjectID(),
		UserId:         oid,
		Title:          util.TruncateRunes(title, cst.TitleMaxLen),
		CreateTime:     now,
		UpdateTime:     now,
	}

	_, err = m.conn.InsertOne(ctx, cacheKeyPrefix+c.ConversationId.Hex(), c)
	return c, err
}

// FindActive 查找归属于uid且未删除的对话, 不存在或归属他人均返回monc.ErrNotFound
func (m *mongoMapper) FindActive(ctx context.Context, uid, cid string) (c *Conversation, err error) {
	oids, err := util.ObjectIDsFromHex(uid, cid)
	if err != nil {
		return nil, monc.ErrNotFound
	}
	ouid, ocid := oids[0], oids[1]

	c = new(Conversation)
	filter := bson.M{cst.Id: ocid, cst.UserId: ouid, cst.Status: bson.M{cst.NE: cst.DeletedStatus}}
	if err = m.conn.FindOneNoCache(ctx, c, filter); err != nil {
		return nil, err
	}
	return c, nil
}

// List 查询用户未删除的对话, 按update_time倒序, 最多limit条
func (m *mongoMapper) List(ctx context.Context, uid string, limit int64) (cs []*Conversation, err error) {
	oid, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		logs.Errorf("[mapper] [conversation] [List] from hex err:%s", errorx.ErrorWithoutStack(err))
		return nil, err
	}

	opts := options.Find().SetSort(bson.M{cst.UpdateTime: -1}).SetLimit(limit)
	filter := bson.M{cst.UserId: oid, cst.Status: bson.M{cst.NE: cst.DeletedStatus}}
	if err = m.conn.Find(ctx, &cs, filter, opts); err != nil {
		return nil, err
	}
	return cs, nil
}

// SoftDelete 软删除对话
// 条件更新编码了归属与未删除谓词, 未命中任何行说明对话不存在/归属他人/已删除,
// 一律视为成功, 删除操作需要可重试
func (m *mongoMapper) SoftDelete(ctx context.Context, uid, cid string) (err error) {
	oids, err := util.ObjectIDsFromHex(uid, cid)
	if err != nil {
		logs.Errorf("[mapper] [conversation] [SoftDelete] from hex err:%s", errorx.ErrorWithoutStack(err))
		return err
	}
	ouid, ocid := oids[0], oids[1]

	filter := bson.M{cst.Id: ocid, cst.UserId: ouid, cst.Status: bson.M{cst.NE: cst.DeletedStatus}}
	res, err := m.conn.UpdateOne(ctx, cacheKeyPrefix+cid, filter,
		bson.M{cst.Set: bson.M{cst.UpdateTime: time.Now(), cst.DeleteTime: time.Now(), cst.Status: cst.DeletedStatus}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		logs.CtxWarnf(ctx, "[mapper] [conversation] [SoftDelete] no-op: uid=%s cid=%s", uid, cid)
	}
	return nil
}

// Touch 无条件刷新对话的update_time, 归属校验由调用方在同一请求内完成
func (m *mongoMapper) Touch(ctx context.Context, cid string) (err error) {
	ocid, err := primitive.ObjectIDFromHex(cid)
	if err != nil {
		return err
	}
	_, err = m.conn.UpdateOne(ctx, cacheKeyPrefix+cid, bson.M{cst.Id: ocid},
		bson.M{cst.Set: bson.M{cst.UpdateTime: time.Now()}})
	return err
}
