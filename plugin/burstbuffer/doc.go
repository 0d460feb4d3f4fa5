// Package burstbuffer implements a generic burst-buffer scheduler plugin:
// per-job and per-user-named allocation tracking, a stage-in/stage-out
// state machine driven by TestStageIn/TestStageOut polling, per-user and
// per-job size limits, and an allow/deny user list. State transitions and
// limit accounting are ported from the generic burst_buffer plugin this
// system shipped; LoadState shells out to an external status program the
// same way other external-tool integrations in this codebase do, then
// feeds each reported record through the same descriptor engine the REST
// layer uses.
package burstbuffer
