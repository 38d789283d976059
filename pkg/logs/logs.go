package logs

// 日志门面, 统一走go-zero的logx, service.ServiceConf.SetUp负责初始化

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
)

func Infof(format string, a ...any) {
	logx.Infof(format, a...)
}

func Warnf(format string, a ...any) {
	logx.Slowf(format, a...)
}

func Errorf(format string, a ...any) {
	logx.Errorf(format, a...)
}

func CtxInfof(ctx context.Context, format string, a ...any) {
	logx.WithContext(ctx).Infof(format, a...)
}

func CtxWarnf(ctx context.Context, format string, a ...any) {
	logx.WithContext(ctx).Slowf(format, a...)
}

func CtxErrorf(ctx context.Context, format string, a ...any) {
	logx.WithContext(ctx).Errorf(format, a...)
}

// CondErrorf 条件成立时输出错误日志
func CondErrorf(cond bool, format string, a ...any) {
	if cond {
		logx.Errorf(format, a...)
	}
}
