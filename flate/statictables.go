// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package flate

import "github.com/fyflxl/vecflate/internal/tables"

const endOfBlock = tables.EndOfBlock

var (
	lengthBase      = tables.LengthBase
	lengthExtraBits = tables.LengthExtraBits
	distBase        = tables.DistBase
	distExtraBits   = tables.DistExtraBits

	staticLitLenCodes = tables.StaticLitLenCodes
	staticDistCodes   = tables.StaticDistCodes
)
