package validate

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/defitrack/pairstate/internal/apperrors"
	"github.com/defitrack/pairstate/internal/service/dto"
)

// LookupRequestValidate validates business logic request.
func LookupRequestValidate(req dto.LookupRequest) error {
	var zeroAddress = common.Address{}

	if req.TokenA == zeroAddress || req.TokenB == zeroAddress {
		return errors.Wrap(apperrors.ErrInvalidArgument, "token address cannot be empty")
	}

	if req.TokenA == req.TokenB {
		return errors.Wrap(apperrors.ErrInvalidArgument, "token addresses cannot be the same")
	}

	return nil
}
