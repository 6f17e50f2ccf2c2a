// Copyright 2025 walteh LLC
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

/*
Package status publishes what a step did to whoever runs it.

	        +-------------+
	        |  Reporter   |
	        +------+------+
	               |
	    +----------+----------+
	    |                     |
	+---+----------+   +------+-------+
	| GitHub       |   | Terminal     |
	| ::notice::   |   | pterm/color  |
	+--------------+   +--------------+

Inside GitHub Actions (GITHUB_ACTIONS=true) notices and failures become
workflow commands so they show up as annotations on the run. Everywhere else
they are rendered for a terminal. Both mirror every message into zerolog at
debug level.
*/
package status
