package context

import (
	"context"

	"github.com/rewardslab/rewards-backend/constant"
)

func GetUsername(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UsernameKey)
	if v == nil {
		return "", false
	}
	name, ok := v.(string)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}
