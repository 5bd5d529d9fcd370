// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source opens scan inputs. Plain paths are read from the local
// filesystem; s3://bucket/key locations are fetched with the AWS SDK, which
// inherits the shell's AWS setup (AWS_PROFILE, shared config, env, IMDS).
// Remote bodies are cached on disk by bucket, key and ETag.
package source
