package convert

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"tzconv/infras/otel"
	"tzconv/internal/domains/conversion/model/dto"
	"tzconv/internal/domains/conversion/service"
	"tzconv/shared/constant"
	"tzconv/shared/failure"
	"tzconv/shared/timezone"
	"tzconv/transport/cli/response"
)

type Handler struct {
	service service.Conversion
	otel    otel.Otel
}

func New(service service.Conversion, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Convert runs one conversion for the positional arguments and writes the
// results. It returns the process exit code.
func (handler *Handler) Convert(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Convert")
	defer scope.End()

	req := dto.FromArgs(args)

	res, err := handler.service.Convert(ctx, req)
	if err != nil {
		scope.TraceIfError(err)

		return handler.fail(stderr, err)
	}

	if res.Note != constant.Empty {
		response.WithNote(stdout, res.Note)
	}

	for _, result := range res.Results {
		if !result.OK() {
			response.WithLabeledError(stderr, result.Label, result.Err)

			continue
		}

		response.WithLine(stdout, result.Label, result.Display)
	}

	if failed := res.Failed(); failed > 0 {
		log.Warn().Int("failed", failed).Str("mode", res.Mode.String()).Msg("Some zones could not be converted")

		return constant.ExitCodeFailure
	}

	return constant.ExitCodeOK
}

// ListZones writes every zone name the host knows, one per line.
func (handler *Handler) ListZones(ctx context.Context, stdout, stderr io.Writer) int {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListZones")
	defer scope.End()

	zones, err := handler.service.ListZones(ctx)
	if err != nil {
		scope.TraceIfError(err)

		return handler.fail(stderr, err)
	}

	for _, zone := range zones {
		response.WithText(stdout, zone)
	}

	return constant.ExitCodeOK
}

// ListAliases writes the abbreviation table.
func (handler *Handler) ListAliases(stdout io.Writer) int {
	for _, alias := range timezone.Aliases() {
		response.WithLine(stdout, alias.Abbreviation, alias.Zone)
	}

	return constant.ExitCodeOK
}

// Usage reports a malformed command line.
func (handler *Handler) Usage(stderr io.Writer, err error, usage string) int {
	response.WithError(stderr, err)

	if usage != constant.Empty {
		response.WithText(stderr, strings.TrimRight(usage, "\n"))
	}

	return constant.ExitCodeInvalidInput
}

func (handler *Handler) fail(stderr io.Writer, err error) int {
	if failure.IsKind(err, failure.KindInterrupted) {
		log.Debug().Err(err).Msg("Conversion interrupted")
		response.WithText(stderr, constant.Empty)

		return failure.GetCode(err)
	}

	code := response.WithError(stderr, err)

	if failure.IsKind(err, failure.KindUnrecognizedZone) {
		response.WithTip(stderr, zoneTip())
	}

	return code
}

func zoneTip() string {
	aliases := timezone.Aliases()
	names := make([]string, 0, len(aliases))

	for _, alias := range aliases {
		names = append(names, alias.Abbreviation)
	}

	return fmt.Sprintf("use an IANA identifier such as America/New_York, one of %s, or %q",
		strings.Join(names, ", "), constant.DefaultKeyword)
}
