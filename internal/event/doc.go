// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package event provides the prioritized event emitter used by editor commands
// and the document model.
//
// Listeners are called in descending priority order. Listeners registered with
// the same priority run in registration order. Any listener may call
// Info.Stop to short-circuit the remaining listeners, including the default
// handler a command registers for its own execute event.
//
// # Usage
//
//	var em event.Emitter
//	off := em.On("execute", func(info *event.Info, data any) {
//	    if claimed(data) {
//	        info.Stop()
//	    }
//	}, event.PriorityHigh)
//	defer off()
//
//	info := em.Fire("execute", data)
//	if info.Stopped() {
//	    // handled by a higher priority listener
//	}
package event
