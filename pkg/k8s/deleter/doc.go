// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package deleter removes named cluster resources, treating an already
// absent resource as the desired end state.
//
//	del, err := deleter.ForKind(cs, "deployment")
//	if err != nil {
//	    return err
//	}
//	if err := deleter.DeleteIfExists(ctx, del, "todo-app", "apps", "deployment"); err != nil {
//	    return err // [DELETION] failed to delete deployment apps/todo-app: ...
//	}
package deleter
