package vsscert

import (
	"github.com/randbeacon/go-randbeacon/metrics"
)

const namespace = "vsscert"

var (
	validationError = metrics.NewCounter(
		"validation_errors",
		namespace,
		"number of certificate batch validation failures",
		[]string{"reason"},
	)
	signatureError  = validationError.WithLabelValues("signature")
	signingKeyError = validationError.WithLabelValues("signing_key")
	vssKeyError     = validationError.WithLabelValues("vss_key")
	identityError   = validationError.WithLabelValues("identity")
	malformedError  = validationError.WithLabelValues("malformed")
	batchLimitError = validationError.WithLabelValues("batch_limit")

	validatedBatches = metrics.NewCounter(
		"validated_batches",
		namespace,
		"number of certificate batches that passed validation",
		[]string{},
	).WithLabelValues()

	registrySize = metrics.NewGauge(
		"registry_size",
		namespace,
		"number of live certificates in the registry",
		[]string{},
	).WithLabelValues()

	insertEvictions = metrics.NewCounter(
		"insert_evictions",
		namespace,
		"number of registry entries evicted by inserts",
		[]string{},
	).WithLabelValues()

	expiredCertificates = metrics.NewCounter(
		"expired_total",
		namespace,
		"number of certificates aged out at epoch advance",
		[]string{},
	).WithLabelValues()
)
