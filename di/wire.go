//go:build wireinject
// +build wireinject

package di

import (
	"tzconv/config"
	"tzconv/infras/otel"
	convertHandler "tzconv/internal/handlers/convert"
	"tzconv/shared/timezone"
	"tzconv/transport/cli"

	conversionService "tzconv/internal/domains/conversion/service"
	zoneRepository "tzconv/internal/domains/zone/repository"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	timezone.NewSystemClock,
)

var zoneDomain = wire.NewSet(
	zoneRepository.New,
)

var conversionDomain = wire.NewSet(
	cli.NewStdPrompt,
	wire.Bind(new(conversionService.Selector), new(*cli.Prompt)),
	conversionService.New,
)

var domains = wire.NewSet(
	zoneDomain,
	conversionDomain,
)

var handlers = wire.NewSet(
	convertHandler.New,
)

func InitializeCLI() *cli.CLI {
	wire.Build(
		configurations,
		infrastructures,
		domains,
		handlers,
		cli.New,
	)

	return &cli.CLI{}
}
