package router

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewAssessmentRouter),
	fx.Provide(NewWizardRouter),
	fx.Provide(NewScanRouter),
	fx.Provide(NewCatalogRouter),
)
