// Package pkg provides the core libraries for the noticecheck license
// verification tool.
//
// # Overview
//
// noticecheck keeps the THIRD_PARTY_NOTICES file in sync with the Maven
// artifacts a project declares in MODULE.bazel. The pipeline runs through
// the packages here, leaves first:
//
//	MODULE.bazel
//	     ↓
//	[bazel]      (load declarations from the sentinel region)
//	     ↓
//	[reconcile]  (declared vs discovered artifact sets,
//	              using [descriptor] + [github])
//	     ↓
//	[license]    (resolve license texts, using [github])
//	     ↓
//	[notice]     (group by identical text, render, compare/write)
//
// # Main packages
//
// [bazel] - Reads the START_MAVEN_ARTIFACTS_LIST region of MODULE.bazel
// with a restricted literal parser. Manifest content is data, never code.
//
// [github] - Raw-content fetching: rewrites "view file" URLs to
// raw.githubusercontent.com and performs single uncached GETs.
//
// [descriptor] - Extracts canonical group:artifact coordinates from
// upstream pom.xml and build.gradle descriptors, dispatched by suffix.
//
// [reconcile] - Asserts that declared artifacts and descriptor/pinned
// license sources describe the same coordinate set, reporting the
// symmetric difference on drift.
//
// [license] - Locates license document texts by repository-root convention
// (LICENSE, then COPYING) or from pinned absolute URLs.
//
// [notice] - Content-addressed grouping of license texts, deterministic
// rendering of the aggregate document, and byte-exact check/update of the
// on-disk file.
package pkg
