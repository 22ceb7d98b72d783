// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging configures the process-wide logrus logger.

Every package logs through logrus imported as log. Phase transitions are
logged at debug level by the cycler loop, waiter activity at info level by the
orchestrator, and access logs of the standalone debug server at debug level
(errors at error level).

Output goes to stderr unless SetOutput is called. The standard library logger
is redirected to the same writer so that third-party output is interleaved
with ours.
*/
package logging
