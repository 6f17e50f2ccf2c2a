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
Package operation implements the two pipeline steps.

	+----------------+        +----------------+
	|    decrypt     |        |    cleanup     |
	| (main phase)   |        | (post phase)   |
	+-------+--------+        +-------+--------+
	        |                         |
	  match + Decrypter           os.RemoveAll
	        |                         |
	        +-----------+-------------+
	                    |
	            +-------+-------+
	            |    Runner     |
	            | failure line  |
	            +---------------+

The decrypt step lists the source directory (flat, no recursion), keeps the
names accepted by the matcher and hands each file to a [decrypter.Decrypter]
one after the other. The first failure stops the loop; nothing already
written is rolled back.

The cleanup step only shares the destination path with the decrypt step. It
runs in a separate process, usually after the job, whether or not decryption
succeeded.

Errors carry one of the kinds from package failure. The runner turns an error
into "<step> failed with: <message>" for the pipeline.
*/
package operation
