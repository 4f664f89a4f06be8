// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package questions

import "errors"

var ErrQuestionNotFound = errors.New("question not found")
