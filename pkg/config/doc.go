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
Package config resolves the inputs of the decrypt and cleanup steps.

	+-----------+   +--------------+   +-------------+   +----------+
	|   flags   | > | INPUT_* env  | > | config file | > | defaults |
	+-----------+   +--------------+   +-------------+   +----------+
	                        |
	                 +------+------+
	                 |  Resolver   |
	                 +------+------+
	                        |
	          +-------------+-------------+
	          |                           |
	   DecryptConfig                CleanupConfig

Config files may be YAML, JSON or HCL:

	decrypt {
	  source_dir      = "secrets"
	  dest_dir        = "${env.RUNNER_TEMP}/secrets"
	  file_pattern    = "\\.enc\\.yaml$"
	  create_dest_dir = true
	}

	cleanup {
	  delete_dest_dir = true
	}

Relative decrypt paths are joined onto the working directory and must end up
absolute. The cleanup directory is used as given and falls back to the
decrypt dest_dir of the same file.
*/
package config
