package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/opal_dashboard/app/dashboard/internal/service"
)

// ProviderSet 是仪表板服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Engine providers
	NewWorkspace,
	NewSpinner,

	// Service providers
	service.NewDashboardService,
)
