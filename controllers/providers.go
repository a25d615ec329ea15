package controllers

import "go.uber.org/fx"

// Module provides all controller constructors
var Module = fx.Options(
	fx.Provide(NewAssessmentController),
	fx.Provide(NewWizardController),
	fx.Provide(NewScanController),
	fx.Provide(NewCatalogController),
)
