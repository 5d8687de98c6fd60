package retag

import (
	"time"

	"github.com/majorfi/photo-retag/pkg/utils"
	"github.com/sirupsen/logrus"
)

// convertOptions carries the optional hooks of a batch conversion run.
type convertOptions struct {
	progress func(done int, total int)
	stop     func() bool
	logger   *logrus.Logger
}

// ConvertOption configures a ConvertAll run.
type ConvertOption func(*convertOptions)

// WithProgress registers a callback invoked once per converted image with (done, total).
func WithProgress(fn func(done int, total int)) ConvertOption {
	return func(o *convertOptions) { o.progress = fn }
}

// WithStop registers a cooperative cancellation check, consulted once per image before
// converting it. When it returns true the batch stops and the results so far are returned.
func WithStop(fn func() bool) ConvertOption {
	return func(o *convertOptions) { o.stop = fn }
}

// WithLogger attaches a logger for per-image debug output.
func WithLogger(logger *logrus.Logger) ConvertOption {
	return func(o *convertOptions) { o.logger = logger }
}

// sameTime compares two optional timestamps by value.
func sameTime(a *time.Time, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

/**************************************************************************************************
** Convert computes the conversion result for a single image: the effective date taken is
** computed first, then fed into filename compilation so that date tokens in the template
** reflect the date change applied in the same operation.
**
** A new date equal by value to the image's current date taken is reported as nil (no
** metadata write needed). A nil filename means "keep the current name", which is distinct
** from "rename to the same name": only an actual change triggers disk I/O in the save step.
**
** @param img - Metadata snapshot of the image to convert
** @param tokens - Parsed template token sequence, may be empty for "no rename"
** @param rule - The active date rule
** @return utils.TConversion - The per-image result, nil fields meaning "no change"
**************************************************************************************************/
func Convert(img utils.TImage, tokens []Token, rule DateRule) utils.TConversion {
	result := utils.TConversion{}

	newDate := ApplyDateRule(rule, img.DateTaken)
	if !sameTime(newDate, img.DateTaken) {
		result.NewDateTaken = newDate
	}

	if newName, ok := CompileFilename(tokens, img, newDate); ok {
		result.NewFilename = &newName
	}

	return result
}

/**************************************************************************************************
** ConvertAll runs Convert over a list of images sequentially, in input order, and returns
** one result per converted image. It is pure computation over in-memory metadata: it
** performs no I/O and cannot fail. Per-image resolution gaps (an image without a date taken
** under a relative rule, an argument not found in a basename) yield nil result fields and
** never abort the batch.
**
** The optional stop hook is checked once per image; when it fires, the results computed so
** far are returned. The optional progress hook is invoked after each image with
** (done, total). Safe to call from exactly one goroutine at a time.
**
** @param images - Immutable input list of metadata snapshots
** @param tokens - Parsed template token sequence shared by the whole batch
** @param rule - The active date rule shared by the whole batch
** @param opts - Optional progress, stop and logger hooks
** @return []utils.TConversion - One result per image actually converted, in input order
**************************************************************************************************/
func ConvertAll(images []utils.TImage, tokens []Token, rule DateRule, opts ...ConvertOption) []utils.TConversion {
	options := convertOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	results := make([]utils.TConversion, 0, len(images))
	for i, img := range images {
		if options.stop != nil && options.stop() {
			if options.logger != nil {
				options.logger.Warnf("Conversion stopped after %d/%d images", i, len(images))
			}
			break
		}

		result := Convert(img, tokens, rule)
		results = append(results, result)

		if options.logger != nil && options.logger.Level == logrus.DebugLevel {
			newName := img.Filename
			if result.NewFilename != nil {
				newName = *result.NewFilename
			}
			options.logger.WithFields(logrus.Fields{"from": img.Filename, "to": newName}).Debug("Converted")
		}
		if options.progress != nil {
			options.progress(i+1, len(images))
		}
	}

	return results
}
