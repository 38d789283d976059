package adaptor

import (
	"context"
	"errors"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
	"github.com/xh-polaris/aiagent-core-api/biz/infra/config"
	"github.com/xh-polaris/aiagent-core-api/pkg/logs"
)

const hertzContext = "hertz_context"

// InjectContext 将hertz请求上下文塞入ctx, 由路由中间件统一调用
// 核心操作不读取任何环境全局态, 主体信息均从显式传入的ctx解出
func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// ExtractUserId 解析Authorization头中的JWT, 返回userId声明
// 无凭证/凭证非法都作为认证失败返回, 不会兜底为固定身份
func ExtractUserId(ctx context.Context) (userId string, err error) {
	defer func() {
		if err != nil {
			logs.CtxInfof(ctx, "extract user meta fail, err=%v", err)
		}
	}()
	c, err := ExtractContext(ctx)
	if err != nil {
		return
	}
	tokenString := strings.TrimPrefix(string(c.GetHeader("Authorization")), "Bearer ")
	if tokenString == "" {
		err = errors.New("authorization header is empty")
		return
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.GetConfig().Auth.SecretKey), nil
	})
	if err != nil {
		return
	}
	if !token.Valid {
		err = errors.New("token is not valid")
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		err = errors.New("unexpected claims type")
		return
	}
	uid, ok := claims["userId"].(string)
	if !ok || uid == "" {
		err = errors.New("userId claim missing")
		return
	}
	return uid, nil
}
