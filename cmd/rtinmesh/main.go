// Copyright (c) 2017-present FlyWave, Inc. All Rights Reserved.
// See License.txt for license information.

package main

import "github.com/flywave/go-rtin/cmd/rtinmesh/cmd"

func main() {
	cmd.Execute()
}
